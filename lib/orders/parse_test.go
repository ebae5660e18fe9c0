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

package orders

import (
	"testing"
	"time"

	"github.com/sboehler/forecast/lib/sheet"
)

func TestParseDate(t *testing.T) {
	native := time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		desc   string
		cell   sheet.Cell
		want   time.Time
		wantOK bool
	}{
		{desc: "native", cell: sheet.DateCell(native), want: native, wantOK: true},
		{desc: "timestamp", cell: sheet.TextCell("2025-03-15 10:20:30"), want: time.Date(2025, 3, 15, 10, 20, 30, 0, time.UTC), wantOK: true},
		{desc: "iso date", cell: sheet.TextCell("2025-03-15"), want: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), wantOK: true},
		{desc: "italian date", cell: sheet.TextCell("15/03/2025"), want: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), wantOK: true},
		{desc: "single digits", cell: sheet.TextCell("5/3/2025"), want: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), wantOK: true},
		{desc: "invalid month", cell: sheet.TextCell("31-31-2025")},
		{desc: "us order", cell: sheet.TextCell("03/15/2025")},
		{desc: "iso with T", cell: sheet.TextCell("2025-03-15T10:20:30")},
		{desc: "number", cell: sheet.NumberCell(45731)},
		{desc: "empty", cell: sheet.EmptyCell()},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got, ok := ParseDate(test.cell)
			if ok != test.wantOK {
				t.Fatalf("ParseDate(%v) ok = %t, want %t", test.cell, ok, test.wantOK)
			}
			if ok && !got.Equal(test.want) {
				t.Errorf("ParseDate(%v) = %v, want %v", test.cell, got, test.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		desc   string
		cell   sheet.Cell
		want   string
		wantOK bool
	}{
		{desc: "decimal comma", cell: sheet.TextCell("1234,56"), want: "1234.56", wantOK: true},
		{desc: "decimal point", cell: sheet.TextCell("1234.56"), want: "1234.56", wantOK: true},
		{desc: "negative", cell: sheet.TextCell("-7,5"), want: "-7.5", wantOK: true},
		{desc: "padded", cell: sheet.TextCell(" 12 "), want: "12", wantOK: true},
		{desc: "number", cell: sheet.NumberCell(100.5), want: "100.5", wantOK: true},
		{desc: "thousands grouped", cell: sheet.TextCell("1.234,56")},
		{desc: "comma grouped", cell: sheet.TextCell("1,234.56")},
		{desc: "text", cell: sheet.TextCell("abc")},
		{desc: "date", cell: sheet.DateCell(time.Now())},
		{desc: "empty", cell: sheet.EmptyCell()},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got, ok := ParseAmount(test.cell)
			if ok != test.wantOK {
				t.Fatalf("ParseAmount(%v) ok = %t, want %t", test.cell, ok, test.wantOK)
			}
			if ok && got.String() != test.want {
				t.Errorf("ParseAmount(%v) = %s, want %s", test.cell, got, test.want)
			}
		})
	}
}
