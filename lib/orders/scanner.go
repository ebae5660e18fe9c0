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

// Package orders aggregates purchase order sheets organized in supplier
// blocks.
//
// A supplier block starts with a header row whose first cell is
// "Cod. fornitore", carrying the supplier code in the second and the name
// in the fourth cell. The order lines that follow carry the delivery date
// in the fourth and the amount in the thirteenth cell. "Subtotale" rows
// close a block and are never counted.
package orders

import (
	"context"
	"strings"

	"github.com/sboehler/forecast/lib/common/date"
	"github.com/sboehler/forecast/lib/logger"
	"github.com/sboehler/forecast/lib/model/supplier"
	"github.com/sboehler/forecast/lib/sheet"
)

const (
	// HeaderMarker opens a supplier block.
	HeaderMarker = "Cod. fornitore"
	// SubtotalMarker closes a supplier block.
	SubtotalMarker = "Subtotale"

	// DefaultYear is the report year used when none is configured.
	DefaultYear = 2025
)

// Column indexes of the orders sheet.
const (
	colMarker = 0
	colCode   = 1
	colName   = 3
	colDate   = 3
	colAmount = 12
)

// Scanner aggregates order lines per supplier.
type Scanner struct {
	// Year is the report year. Lines in Year are booked per month, lines
	// in earlier years into the prior-years total, later lines are
	// dropped.
	Year int

	// ResetOnEmptyCode makes a header row without a supplier code close
	// the current block. By default the previous supplier stays active.
	ResetOnEmptyCode bool
}

// Stats describes a scan. Skipped lines never affect the aggregates.
type Stats struct {
	Rows        int
	Headers     int
	Accepted    int
	BadDate     int
	BadAmount   int
	AfterCutoff int
}

// Skipped returns the number of order lines which were not booked.
func (s Stats) Skipped() int {
	return s.BadDate + s.BadAmount + s.AfterCutoff
}

func (s Scanner) year() int {
	if s.Year == 0 {
		return DefaultYear
	}
	return s.Year
}

// cursor is the supplier block currently being read.
type cursor struct {
	code, name string
	active     bool
}

// Scan walks the rows once and returns the aggregates in the order the
// suppliers were first seen. It only fails if ctx is canceled.
func (s Scanner) Scan(ctx context.Context, rows sheet.Rows) (*supplier.Aggregates, Stats, error) {
	var (
		log    = logger.FromContext(ctx)
		year   = s.year()
		cutoff = date.EndOfYear(year)
		aggs   = supplier.New()
		stats  Stats
		cur    cursor
	)
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		stats.Rows++

		if isHeader(row) {
			stats.Headers++
			code := row.Cell(colCode).String()
			if code == "" {
				if s.ResetOnEmptyCode {
					cur = cursor{}
				}
				log.Debug().Int("row", i+1).Bool("reset", s.ResetOnEmptyCode).Msg("header without supplier code")
				continue
			}
			cur = cursor{code: code, name: row.Cell(colName).String(), active: true}
			a := aggs.GetOrCreate(code)
			if cur.name != "" {
				a.Name = cur.name
			}
			continue
		}

		if !cur.active || !isOrderLine(row) {
			continue
		}
		d, ok := ParseDate(row.Cell(colDate))
		if !ok {
			stats.BadDate++
			log.Debug().Int("row", i+1).Str("supplier", cur.code).Str("date", row.Cell(colDate).String()).Msg("skipped: invalid date")
			continue
		}
		// Calendar dates are compared, so any time on December 31 is
		// still booked. A datetime comparison against midnight would
		// drop lines timed after 00:00 on the last day.
		if date.Day(d).After(cutoff) {
			stats.AfterCutoff++
			log.Debug().Int("row", i+1).Str("supplier", cur.code).Time("date", d).Msg("skipped: after cutoff")
			continue
		}
		amount, ok := ParseAmount(row.Cell(colAmount))
		if !ok {
			stats.BadAmount++
			log.Debug().Int("row", i+1).Str("supplier", cur.code).Str("amount", row.Cell(colAmount).String()).Msg("skipped: invalid amount")
			continue
		}

		a := aggs.GetOrCreate(cur.code)
		if d.Year() == year {
			a.AddMonth(d.Month(), amount)
		} else {
			a.AddPrior(amount)
		}
		stats.Accepted++
	}
	return aggs, stats, nil
}

func isHeader(row sheet.Row) bool {
	s, ok := row.Cell(colMarker).Text()
	return ok && s == HeaderMarker
}

// isOrderLine checks the shape of an order line: a text or non-zero
// numeric first cell which is not a marker, plus a date and an amount.
func isOrderLine(row sheet.Row) bool {
	marker := row.Cell(colMarker)
	switch marker.Kind() {
	case sheet.Text:
	case sheet.Number:
		if n, _ := marker.Number(); n == 0 {
			return false
		}
	default:
		return false
	}
	switch strings.TrimSpace(marker.String()) {
	case HeaderMarker, SubtotalMarker:
		return false
	}
	return !row.Cell(colDate).IsEmpty() && !row.Cell(colAmount).IsEmpty()
}
