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
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestAddThousandsSep(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"1000.000", "1,000.000"},
		{"1.234", "1.234"},
		{"1234.56", "1,234.56"},
		{"12345678.9", "12,345,678.9"},
		{"-12345678", "-12,345,678"},
		{"-123.45", "-123.45"},
		{"0", "0"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := addThousandsSep(test.input); got != test.want {
				t.Errorf("addThousandsSep(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func sampleTable() *Table {
	tbl := New(1, 2)
	tbl.AddSeparatorRow()
	tbl.AddRow().AddText("Fornitore", Center).AddText("marzo", Center).AddText("Totale", Center)
	tbl.AddSeparatorRow()
	tbl.AddRow().AddText("Acme", Left).AddNumbers(decimal.RequireFromString("1234.50"), decimal.NewFromInt(-2))
	tbl.AddSeparatorRow()
	return tbl
}

func TestTextRenderer(t *testing.T) {
	var (
		buf bytes.Buffer
		r   = TextRenderer{Round: 2}
	)
	if err := r.Render(sampleTable(), &buf); err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	sep := "+" + strings.Repeat("-", 11) + "+" + strings.Repeat("-", 10) + "+" + strings.Repeat("-", 10) + "+"
	want := strings.Join([]string{
		sep,
		"| Fornitore |  marzo   |  Totale  |",
		sep,
		"| Acme      | 1,234.50 |    -2.00 |",
		sep,
		"",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTextRendererLocale(t *testing.T) {
	r := TextRenderer{Round: 2, Printer: message.NewPrinter(language.Italian)}
	if got, want := r.numToString(decimal.RequireFromString("1234.5")), "1.234,50"; got != want {
		t.Errorf("numToString() = %q, want %q", got, want)
	}
}

func TestCSVRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := CSVRenderer{Comma: ';'}
	if err := r.Render(sampleTable(), &buf); err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	want := "Fornitore;marzo;Totale\nAcme;1234.5;-2\n"
	if got := buf.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
