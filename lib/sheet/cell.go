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

// Package sheet provides decoded spreadsheet rows with typed cells.
package sheet

import (
	"strconv"
	"strings"
	"time"
)

// Kind is the variant of a cell.
type Kind int

const (
	// Empty is an absent cell.
	Empty Kind = iota
	// Text is a string cell.
	Text
	// Number is a numeric cell.
	Number
	// Date is a date/time cell.
	Date
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Text:
		return "text"
	case Number:
		return "number"
	case Date:
		return "date"
	}
	return ""
}

// Cell is a single spreadsheet value.
type Cell struct {
	kind Kind
	text string
	num  float64
	date time.Time
}

// EmptyCell returns an empty cell.
func EmptyCell() Cell {
	return Cell{}
}

// TextCell returns a text cell. The empty string yields an empty cell.
func TextCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{kind: Text, text: s}
}

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell {
	return Cell{kind: Number, num: f, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// DateCell returns a date cell.
func DateCell(t time.Time) Cell {
	return Cell{kind: Date, date: t}
}

// numberFromText returns a numeric cell which keeps its source text, or
// false if s is not a number.
func numberFromText(s string) (Cell, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Cell{}, false
	}
	return Cell{kind: Number, num: f, text: s}, true
}

// Kind returns the variant of the cell.
func (c Cell) Kind() Kind {
	return c.kind
}

// IsEmpty reports whether the cell is absent.
func (c Cell) IsEmpty() bool {
	return c.kind == Empty
}

// Text returns the string content of a text cell.
func (c Cell) Text() (string, bool) {
	return c.text, c.kind == Text
}

// Number returns the value of a numeric cell.
func (c Cell) Number() (float64, bool) {
	return c.num, c.kind == Number
}

// Date returns the value of a date cell.
func (c Cell) Date() (time.Time, bool) {
	return c.date, c.kind == Date
}

// String converts the cell to text. Numbers keep the text they were read
// from, dates render as YYYY-MM-DD HH:MM:SS and empty cells as "".
func (c Cell) String() string {
	switch c.kind {
	case Text, Number:
		return c.text
	case Date:
		return c.date.Format("2006-01-02 15:04:05")
	}
	return ""
}

// Row is a sequence of cells.
type Row []Cell

// Cell returns the cell at index i, or an empty cell if the row is too
// short.
func (r Row) Cell(i int) Cell {
	if i < 0 || i >= len(r) {
		return Cell{}
	}
	return r[i]
}

// Rows is an indexable sequence of rows.
type Rows []Row

// TextRow creates a row of text cells, mostly for tests. Empty strings
// become empty cells.
func TextRow(ss ...string) Row {
	r := make(Row, 0, len(ss))
	for _, s := range ss {
		r = append(r, TextCell(s))
	}
	return r
}
