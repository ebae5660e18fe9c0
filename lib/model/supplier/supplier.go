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

// Package supplier holds per-supplier order aggregates.
package supplier

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sboehler/forecast/lib/common/compare"
	"github.com/sboehler/forecast/lib/common/dict"
)

// Aggregate accumulates the order amounts of one supplier.
type Aggregate struct {
	Code string
	Name string

	// Monthly holds the totals of the report year, indexed by month-1.
	Monthly [12]decimal.Decimal

	// Prior holds the total of all years before the report year.
	Prior decimal.Decimal

	// Total is Prior plus the sum of Monthly.
	Total decimal.Decimal

	// OffsetLabel is nil until the aggregate has been enriched.
	OffsetLabel *string
}

// Month returns the total for month m of the report year.
func (a *Aggregate) Month(m time.Month) decimal.Decimal {
	if m < time.January || m > time.December {
		return decimal.Zero
	}
	return a.Monthly[m-1]
}

// AddMonth books an amount in month m of the report year.
func (a *Aggregate) AddMonth(m time.Month, amount decimal.Decimal) {
	a.Monthly[m-1] = a.Monthly[m-1].Add(amount)
	a.Total = a.Total.Add(amount)
}

// AddPrior books an amount dated before the report year.
func (a *Aggregate) AddPrior(amount decimal.Decimal) {
	a.Prior = a.Prior.Add(amount)
	a.Total = a.Total.Add(amount)
}

// Balanced reports whether Total equals Prior plus all monthly totals.
func (a *Aggregate) Balanced() bool {
	sum := a.Prior
	for _, m := range a.Monthly {
		sum = sum.Add(m)
	}
	return sum.Equal(a.Total)
}

// Label returns the offset account label, or "" if there is none.
func (a *Aggregate) Label() string {
	if a.OffsetLabel == nil {
		return ""
	}
	return *a.OffsetLabel
}

// Aggregates maps supplier codes to aggregates and remembers the order in
// which codes were first seen.
type Aggregates struct {
	index map[string]*Aggregate
	order []*Aggregate
}

// New creates an empty collection.
func New() *Aggregates {
	return &Aggregates{index: make(map[string]*Aggregate)}
}

// Get returns the aggregate for code.
func (as *Aggregates) Get(code string) (*Aggregate, bool) {
	a, ok := as.index[code]
	return a, ok
}

// GetOrCreate returns the aggregate for code, creating a zero-valued one
// on first reference.
func (as *Aggregates) GetOrCreate(code string) *Aggregate {
	return dict.GetDefault(as.index, code, func() *Aggregate {
		a := &Aggregate{Code: code}
		as.order = append(as.order, a)
		return a
	})
}

// Len returns the number of suppliers.
func (as *Aggregates) Len() int {
	return len(as.order)
}

// All returns the aggregates in encounter order.
func (as *Aggregates) All() []*Aggregate {
	res := make([]*Aggregate, len(as.order))
	copy(res, as.order)
	return res
}

// Enriched reports whether offset labels have been attached.
func (as *Aggregates) Enriched() bool {
	for _, a := range as.order {
		if a.OffsetLabel != nil {
			return true
		}
	}
	return false
}

// CompareName orders aggregates by name.
var CompareName = compare.By(func(a *Aggregate) string { return a.Name }, compare.Ordered[string])

// SortedByName returns the aggregates sorted by name. Suppliers with equal
// names keep their encounter order.
func (as *Aggregates) SortedByName() []*Aggregate {
	res := as.All()
	compare.Sort(res, CompareName)
	return res
}

// Filter returns the aggregates for which keep is true, in encounter order.
func (as *Aggregates) Filter(keep func(*Aggregate) bool) *Aggregates {
	res := New()
	for _, a := range as.order {
		if keep(a) {
			res.index[a.Code] = a
			res.order = append(res.order, a)
		}
	}
	return res
}
