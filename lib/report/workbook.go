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

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/slices"
)

// CurrencyFormat is the number format of amount cells.
const CurrencyFormat = `#,##0.00 "€"`

const (
	nameWidth   = 40
	codeWidth   = 18
	offsetWidth = 30
	amountWidth = 16
)

// Workbook writes the report to a new workbook with a single sheet.
func (r *Report) Workbook(sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := r.write(f, sheet); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func (r *Report) write(f *excelize.File, sheet string) error {
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	format := CurrencyFormat
	currency, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return err
	}
	columns := r.Columns()
	header := make([]interface{}, 0, len(columns))
	for _, c := range columns {
		header = append(header, c)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return err
	}
	for i, row := range r.Rows {
		values := make([]interface{}, 0, len(columns))
		for _, t := range r.texts(row) {
			values = append(values, t)
		}
		for _, a := range row.Amounts() {
			values = append(values, a.InexactFloat64())
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, start, &values); err != nil {
			return err
		}
	}
	if len(r.Rows) > 0 {
		first, err := excelize.CoordinatesToCellName(r.textColumns()+1, 2)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(len(columns), len(r.Rows)+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, first, last, currency); err != nil {
			return err
		}
	}
	if err := r.setWidths(f, sheet, len(columns)); err != nil {
		return err
	}
	// one spacer row between the data and the stamp
	stamp, err := excelize.CoordinatesToCellName(1, len(r.Rows)+3)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, stamp, r.Stamp())
}

func (r *Report) setWidths(f *excelize.File, sheet string, n int) error {
	widths := []float64{nameWidth, codeWidth}
	if r.Enriched {
		widths = append(widths, offsetWidth)
	}
	for len(widths) < n {
		widths = append(widths, amountWidth)
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the offset label for a supplier code.
type Lookup func(code string) (string, bool)

// InsertOffsetColumn adds the offset column as the third column of an
// existing report sheet. Existing offset columns are removed first, so
// repeated runs leave exactly one.
func InsertOffsetColumn(f *excelize.File, sheet string, lookup Lookup) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("sheet %q has no header row", sheet)
	}
	for i := len(rows[0]) - 1; i >= 0; i-- {
		if rows[0][i] != OffsetHeader {
			continue
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.RemoveCol(sheet, col); err != nil {
			return err
		}
	}
	if rows, err = f.GetRows(sheet); err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("sheet %q has no %q column", sheet, CodeHeader)
	}
	codeCol := slices.Index(rows[0], CodeHeader)
	if codeCol < 0 {
		return fmt.Errorf("sheet %q has no %q column", sheet, CodeHeader)
	}
	labels := make([]string, len(rows))
	for i, row := range rows[1:] {
		if codeCol >= len(row) || row[codeCol] == "" {
			continue
		}
		if l, ok := lookup(row[codeCol]); ok {
			labels[i+1] = l
		}
	}
	if err := f.InsertCols(sheet, "C", 1); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "C1", OffsetHeader); err != nil {
		return err
	}
	style, err := f.GetCellStyle(sheet, "B1")
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "C1", "C1", style); err != nil {
		return err
	}
	for i, l := range labels {
		if l == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(3, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, l); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "C", "C", offsetWidth)
}
