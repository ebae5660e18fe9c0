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
	"testing"
	"time"
)

func TestCellString(t *testing.T) {
	tests := []struct {
		desc string
		cell Cell
		kind Kind
		want string
	}{
		{desc: "empty", cell: EmptyCell(), kind: Empty, want: ""},
		{desc: "empty text", cell: TextCell(""), kind: Empty, want: ""},
		{desc: "text", cell: TextCell(" Subtotale "), kind: Text, want: " Subtotale "},
		{desc: "integer", cell: NumberCell(6010), kind: Number, want: "6010"},
		{desc: "fraction", cell: NumberCell(100.5), kind: Number, want: "100.5"},
		{
			desc: "date",
			cell: DateCell(time.Date(2025, 3, 15, 8, 30, 0, 0, time.UTC)),
			kind: Date,
			want: "2025-03-15 08:30:00",
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			if got := test.cell.Kind(); got != test.kind {
				t.Errorf("Kind() = %v, want %v", got, test.kind)
			}
			if got := test.cell.String(); got != test.want {
				t.Errorf("String() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestRowCell(t *testing.T) {
	r := TextRow("a", "", "c")
	if got := r.Cell(0).String(); got != "a" {
		t.Errorf("Cell(0) = %q, want %q", got, "a")
	}
	if !r.Cell(1).IsEmpty() {
		t.Errorf("Cell(1) = %v, want empty", r.Cell(1))
	}
	if !r.Cell(12).IsEmpty() {
		t.Errorf("Cell(12) = %v, want empty", r.Cell(12))
	}
	if !r.Cell(-1).IsEmpty() {
		t.Errorf("Cell(-1) = %v, want empty", r.Cell(-1))
	}
}

func TestClassifyText(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
		str   string
	}{
		{"", Empty, ""},
		{"00123", Number, "00123"},
		{"100,50", Text, "100,50"},
		{"12.5", Number, "12.5"},
		{"2025-03-15", Date, "2025-03-15 00:00:00"},
		{"2025-03-15T10:11:12Z", Date, "2025-03-15 10:11:12"},
		{"15/03/2025", Text, "15/03/2025"},
		{"Acme", Text, "Acme"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			c := classifyText(test.input)
			if c.Kind() != test.kind {
				t.Errorf("classifyText(%q).Kind() = %v, want %v", test.input, c.Kind(), test.kind)
			}
			if c.String() != test.str {
				t.Errorf("classifyText(%q).String() = %q, want %q", test.input, c.String(), test.str)
			}
		})
	}
}

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		format string
		want   bool
	}{
		{"dd/mm/yyyy", true},
		{"yyyy-mm-dd hh:mm:ss", true},
		{"[$-410]d mmmm yyyy", true},
		{`#,##0.00 "€"`, false},
		{"General", false},
		{"0.00", false},
		{`[Red]#,##0`, false},
		{`0\d`, false},
		{"@", false},
	}
	for _, test := range tests {
		if got := isDateFormat(test.format); got != test.want {
			t.Errorf("isDateFormat(%q) = %t, want %t", test.format, got, test.want)
		}
	}
}
