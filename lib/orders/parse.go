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
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sboehler/forecast/lib/sheet"
)

// dateLayouts are tried in order on textual dates.
var dateLayouts = []string{
	"2006-1-2 15:4:5",
	"2006-1-2",
	"2/1/2006",
}

// ParseDate accepts a date cell as-is and parses a text cell with the
// layouts YYYY-MM-DD HH:MM:SS, YYYY-MM-DD and DD/MM/YYYY. Any other cell
// is rejected.
func ParseDate(c sheet.Cell) (time.Time, bool) {
	if t, ok := c.Date(); ok {
		return t, true
	}
	s, ok := c.Text()
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseAmount converts a text or number cell to a decimal after replacing
// every comma with a period. No thousands separators are recognized, so
// "1.234,56" fails to parse.
func ParseAmount(c sheet.Cell) (decimal.Decimal, bool) {
	switch c.Kind() {
	case sheet.Text, sheet.Number:
	default:
		return decimal.Zero, false
	}
	s := strings.TrimSpace(strings.ReplaceAll(c.String(), ",", "."))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
