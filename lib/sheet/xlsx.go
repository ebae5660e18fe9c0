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
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"
)

func readXLSX(path, sheet string) (rows Rows, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return Decode(f, sheet)
}

// Decode reads the named sheet of an open workbook into typed rows.
func Decode(f *excelize.File, sheet string) (Rows, error) {
	if idx, err := f.GetSheetIndex(sheet); err != nil {
		return nil, err
	} else if idx < 0 {
		return nil, fmt.Errorf("sheet %q not found (have %s)", sheet, strings.Join(f.GetSheetList(), ", "))
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	d := xlsxDecoder{
		file:   f,
		sheet:  sheet,
		styles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	rows := make(Rows, 0, len(raw))
	for i, rawRow := range raw {
		row := make(Row, len(rawRow))
		for j, v := range rawRow {
			if row[j], err = d.cell(j+1, i+1, v); err != nil {
				return nil, err
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type xlsxDecoder struct {
	file     *excelize.File
	sheet    string
	date1904 bool

	// styles caches whether a style ID carries a date format.
	styles map[int]bool
}

func (d *xlsxDecoder) cell(col, row int, v string) (Cell, error) {
	if v == "" {
		return EmptyCell(), nil
	}
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return Cell{}, err
	}
	typ, err := d.file.GetCellType(d.sheet, ref)
	if err != nil {
		return Cell{}, err
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeError:
		return TextCell(v), nil
	case excelize.CellTypeBool:
		if v == "1" {
			return TextCell("TRUE"), nil
		}
		return TextCell("FALSE"), nil
	case excelize.CellTypeDate:
		if t, ok := parseISO(v); ok {
			return DateCell(t), nil
		}
		return TextCell(v), nil
	}
	c, ok := numberFromText(v)
	if !ok {
		return TextCell(v), nil
	}
	isDate, err := d.hasDateFormat(ref)
	if err != nil {
		return Cell{}, err
	}
	if !isDate {
		return c, nil
	}
	t, err := excelize.ExcelDateToTime(c.num, d.date1904)
	if err != nil {
		// Serial numbers outside the representable range stay numbers.
		return c, nil
	}
	return DateCell(t), nil
}

func (d *xlsxDecoder) hasDateFormat(ref string) (bool, error) {
	id, err := d.file.GetCellStyle(d.sheet, ref)
	if err != nil {
		return false, err
	}
	if isDate, ok := d.styles[id]; ok {
		return isDate, nil
	}
	style, err := d.file.GetStyle(id)
	if err != nil {
		return false, err
	}
	var isDate bool
	if style.CustomNumFmt != nil {
		isDate = isDateFormat(*style.CustomNumFmt)
	} else {
		isDate = builtinDateFormats[style.NumFmt]
	}
	d.styles[id] = isDate
	return isDate, nil
}

var builtinDateFormats = func() map[int]bool {
	m := make(map[int]bool)
	for _, r := range [][2]int{{14, 22}, {27, 36}, {45, 47}, {50, 58}} {
		for i := r[0]; i <= r[1]; i++ {
			m[i] = true
		}
	}
	return m
}()

// isDateFormat reports whether a custom number format renders dates or
// times. Quoted literals, escaped characters and bracketed sections such
// as colors or locales are ignored.
func isDateFormat(format string) bool {
	var (
		quoted, bracket, escaped bool
	)
	for _, ch := range strings.ToLower(format) {
		switch {
		case escaped:
			escaped = false
		case quoted:
			quoted = ch != '"'
		case bracket:
			bracket = ch != ']'
		case ch == '\\':
			escaped = true
		case ch == '"':
			quoted = true
		case ch == '[':
			bracket = true
		case strings.ContainsRune("ymdhs", ch):
			return true
		}
	}
	return false
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseISO(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
