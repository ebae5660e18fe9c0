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

package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVRenderer renders a table as comma-separated values.
type CSVRenderer struct {
	// Comma is the field delimiter, ',' if unset.
	Comma rune
}

// Render renders the table to w. Rows without any text are dropped.
func (r *CSVRenderer) Render(t *Table, w io.Writer) error {
	writer := csv.NewWriter(w)
	if r.Comma != 0 {
		writer.Comma = r.Comma
	}
	for _, row := range t.rows {
		var (
			rec     = make([]string, 0, len(row.cells))
			hasText bool
		)
		for _, c := range row.cells {
			s, err := r.renderCell(c)
			if err != nil {
				return err
			}
			hasText = hasText || len(s) > 0
			rec = append(rec, s)
		}
		if !hasText {
			continue
		}
		if err := writer.Write(rec); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func (r *CSVRenderer) renderCell(c cell) (string, error) {
	switch t := c.(type) {

	case emptyCell, SeparatorCell:
		return "", nil

	case textCell:
		return t.Content, nil

	case numberCell:
		return t.n.String(), nil
	}
	return "", fmt.Errorf("%v is not a valid cell type", c)
}
