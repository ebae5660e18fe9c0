// Copyright 2025 Silvio Böhler
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sheet

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrSourceUnavailable matches every SourceUnavailableError.
var ErrSourceUnavailable = errors.New("source unavailable")

// SourceUnavailableError reports a spreadsheet that could not be opened
// or decoded.
type SourceUnavailableError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *SourceUnavailableError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("%s [%s]: %v", e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is.
func (e *SourceUnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// Options configure decoding.
type Options struct {
	// Comma is the field delimiter of CSV files.
	Comma rune
}

// Open decodes the named sheet of the spreadsheet at path. The decoder is
// chosen by file extension.
func Open(path, sheet string, opts Options) (Rows, error) {
	var (
		rows Rows
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path, sheet)
	case ".xls":
		rows, err = readXLS(path, sheet)
	case ".csv":
		sheet = ""
		rows, err = readCSV(path, opts.Comma)
	default:
		err = fmt.Errorf("unsupported file type %q", ext)
	}
	if err != nil {
		return nil, &SourceUnavailableError{Path: path, Sheet: sheet, Err: err}
	}
	return rows, nil
}
