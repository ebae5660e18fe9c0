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
	"fmt"
	"strings"

	"github.com/extrame/xls"
)

func readXLS(path, sheet string) (Rows, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, err
	}
	var names []string
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}
		if ws.Name == sheet {
			return decodeXLSSheet(ws), nil
		}
		names = append(names, ws.Name)
	}
	return nil, fmt.Errorf("sheet %q not found (have %s)", sheet, strings.Join(names, ", "))
}

func decodeXLSSheet(ws *xls.WorkSheet) Rows {
	rows := make(Rows, 0, int(ws.MaxRow)+1)
	for i := 0; i <= int(ws.MaxRow); i++ {
		r := ws.Row(i)
		if r == nil {
			rows = append(rows, nil)
			continue
		}
		row := make(Row, r.LastCol()+1)
		for j := r.FirstCol(); j <= r.LastCol(); j++ {
			row[j] = classifyText(r.Col(j))
		}
		rows = append(rows, row)
	}
	return rows
}

// classifyText types a cell that a decoder only delivers as text.
func classifyText(s string) Cell {
	if s == "" {
		return EmptyCell()
	}
	if c, ok := numberFromText(s); ok {
		return c
	}
	if t, ok := parseISO(s); ok {
		return DateCell(t)
	}
	return TextCell(s)
}
