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

// Package report lays out supplier aggregates as a forecasting report.
package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sboehler/forecast/lib/common/date"
	"github.com/sboehler/forecast/lib/common/table"
	"github.com/sboehler/forecast/lib/model/supplier"
)

// Column headers.
const (
	NameHeader   = "Fornitore"
	CodeHeader   = "Codice Fornitore"
	OffsetHeader = "Contropartita"
	TotalHeader  = "Totale Anno"
	StampPrefix  = "Aggiornato al: "
)

// PriorHeader returns the header of the prior-years column.
func PriorHeader(year int) string {
	return fmt.Sprintf("Antecedenti %d", year)
}

// Row is one supplier line of the report.
type Row struct {
	Name   string
	Code   string
	Label  string
	Prior  decimal.Decimal
	Months [12]decimal.Decimal
	Total  decimal.Decimal
}

// Amounts returns the prior-years total, the monthly totals and the
// yearly total in column order.
func (r Row) Amounts() []decimal.Decimal {
	res := make([]decimal.Decimal, 0, 14)
	res = append(res, r.Prior)
	res = append(res, r.Months[:]...)
	return append(res, r.Total)
}

// Report is a forecasting report.
type Report struct {
	Year      int
	UpdatedAt time.Time

	// Location is the time zone of the update stamp. A nil location
	// formats UpdatedAt as is.
	Location *time.Location

	// Enriched reports whether the report carries the offset column.
	Enriched bool

	Rows []Row
}

// New creates a report from the given aggregates, ordered by supplier name.
func New(aggs *supplier.Aggregates, year int, updatedAt time.Time) *Report {
	res := &Report{
		Year:      year,
		UpdatedAt: updatedAt,
		Enriched:  aggs.Enriched(),
	}
	for _, a := range aggs.SortedByName() {
		res.Rows = append(res.Rows, Row{
			Name:   a.Name,
			Code:   a.Code,
			Label:  a.Label(),
			Prior:  a.Prior,
			Months: a.Monthly,
			Total:  a.Total,
		})
	}
	return res
}

// Columns returns the column headers.
func (r *Report) Columns() []string {
	res := []string{NameHeader, CodeHeader}
	if r.Enriched {
		res = append(res, OffsetHeader)
	}
	res = append(res, PriorHeader(r.Year))
	for _, m := range date.Months() {
		res = append(res, date.MonthName(m))
	}
	return append(res, TotalHeader)
}

// textColumns returns the number of leading text columns.
func (r *Report) textColumns() int {
	if r.Enriched {
		return 3
	}
	return 2
}

func (r *Report) texts(row Row) []string {
	if r.Enriched {
		return []string{row.Name, row.Code, row.Label}
	}
	return []string{row.Name, row.Code}
}

// Stamp returns the update line.
func (r *Report) Stamp() string {
	return StampPrefix + date.Stamp(r.UpdatedAt, r.Location)
}

// Table renders the report into a table.
func (r *Report) Table() *table.Table {
	groups := make([]int, 0, 4)
	for i := 0; i < r.textColumns(); i++ {
		groups = append(groups, 1)
	}
	tbl := table.New(append(groups, 14)...)
	tbl.AddSeparatorRow()
	header := tbl.AddRow()
	for _, c := range r.Columns() {
		header.AddText(c, table.Center)
	}
	tbl.AddSeparatorRow()
	for _, row := range r.Rows {
		tr := tbl.AddRow()
		for _, t := range r.texts(row) {
			tr.AddText(t, table.Left)
		}
		tr.AddNumbers(row.Amounts()...)
	}
	tbl.AddSeparatorRow()
	stamp := tbl.AddRow().AddText(r.Stamp(), table.Left)
	stamp.FillEmpty()
	return tbl
}
