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
	"bufio"
	"encoding/csv"
	"io"
	"os"

	"go.uber.org/multierr"
)

func readCSV(path string, comma rune) (rows Rows, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return decodeCSV(bufio.NewReader(f), comma)
}

func decodeCSV(r io.Reader, comma rune) (Rows, error) {
	reader := csv.NewReader(r)
	if comma != 0 {
		reader.Comma = comma
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	var rows Rows
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, TextRow(rec...))
	}
}
