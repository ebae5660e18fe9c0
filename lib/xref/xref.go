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

// Package xref resolves the offset account (contropartita) of suppliers
// through two reference sheets: the supplier registry maps supplier codes
// to internal account codes, and the offset sheet maps account codes to
// offset account labels.
package xref

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sboehler/forecast/lib/logger"
	"github.com/sboehler/forecast/lib/model/supplier"
	"github.com/sboehler/forecast/lib/sheet"
)

// SupplierMarker marks a supplier row in the registry.
const SupplierMarker = "codice"

// Column indexes of the reference sheets.
const (
	colOffsetAccount = 0
	colOffsetLabel   = 2

	colSupplierMarker  = 0
	colSupplierCode    = 1
	colSupplierAccount = 10
)

// ErrEnrichmentUnavailable matches every EnrichmentUnavailableError.
var ErrEnrichmentUnavailable = errors.New("enrichment unavailable")

// EnrichmentUnavailableError reports that a reference source could not be
// loaded. Aggregates are left untouched when it is returned.
type EnrichmentUnavailableError struct {
	Err error
}

func (e *EnrichmentUnavailableError) Error() string {
	return fmt.Sprintf("enrichment unavailable: %v", e.Err)
}

func (e *EnrichmentUnavailableError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is.
func (e *EnrichmentUnavailableError) Is(target error) bool {
	return target == ErrEnrichmentUnavailable
}

// BuildOffsetLabels maps account codes to offset labels. The first row is
// a header. Later rows overwrite earlier ones with the same code.
func BuildOffsetLabels(ctx context.Context, rows sheet.Rows) (map[string]string, error) {
	res := make(map[string]string)
	for i := 1; i < len(rows); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		account := rows[i].Cell(colOffsetAccount)
		if account.IsEmpty() {
			continue
		}
		res[account.String()] = rows[i].Cell(colOffsetLabel).String()
	}
	return res, nil
}

// BuildSupplierAccounts maps supplier codes to account codes. A row whose
// first cell reads "codice" carries the supplier code in its second cell;
// the account code is in the eleventh cell of the row right after it.
func BuildSupplierAccounts(ctx context.Context, rows sheet.Rows) (map[string]string, error) {
	res := make(map[string]string)
	for i := 0; i < len(rows); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !isSupplierMarker(rows[i].Cell(colSupplierMarker)) {
			continue
		}
		code := rows[i].Cell(colSupplierCode).String()
		if code == "" {
			continue
		}
		if i+1 >= len(rows) {
			break
		}
		// The account row is consumed together with its marker row.
		i++
		if account := rows[i].Cell(colSupplierAccount).String(); account != "" {
			res[code] = account
		}
	}
	return res, nil
}

func isSupplierMarker(c sheet.Cell) bool {
	s, ok := c.Text()
	return ok && strings.ToLower(strings.TrimSpace(s)) == SupplierMarker
}

// CrossReference joins supplier codes to offset labels. It is not modified
// after construction and can be shared between goroutines.
type CrossReference struct {
	offsetLabels     map[string]string
	supplierAccounts map[string]string
}

// Build creates a cross reference from the offset and supplier reference
// rows.
func Build(ctx context.Context, offsetRows, supplierRows sheet.Rows) (*CrossReference, error) {
	labels, err := BuildOffsetLabels(ctx, offsetRows)
	if err != nil {
		return nil, err
	}
	accounts, err := BuildSupplierAccounts(ctx, supplierRows)
	if err != nil {
		return nil, err
	}
	return &CrossReference{offsetLabels: labels, supplierAccounts: accounts}, nil
}

// Label resolves the offset label of a supplier code. A miss at either
// stage yields false.
func (x *CrossReference) Label(code string) (string, bool) {
	account, ok := x.supplierAccounts[code]
	if !ok {
		return "", false
	}
	label, ok := x.offsetLabels[account]
	return label, ok
}

// Apply sets the offset label of every aggregate, using "" for suppliers
// which cannot be resolved.
func (x *CrossReference) Apply(aggs *supplier.Aggregates) {
	for _, a := range aggs.All() {
		label, _ := x.Label(a.Code)
		a.OffsetLabel = &label
	}
}

// Loader produces the rows of a reference source.
type Loader func() (sheet.Rows, error)

// Enricher loads both reference sources and applies them.
type Enricher struct {
	Offset   Loader
	Supplier Loader
}

// Load reads both sources. Any failure is returned as an
// EnrichmentUnavailableError.
func (e Enricher) Load(ctx context.Context) (*CrossReference, error) {
	if e.Offset == nil || e.Supplier == nil {
		return nil, &EnrichmentUnavailableError{Err: errors.New("both reference sources are required")}
	}
	offsetRows, err := e.Offset()
	if err != nil {
		return nil, &EnrichmentUnavailableError{Err: err}
	}
	supplierRows, err := e.Supplier()
	if err != nil {
		return nil, &EnrichmentUnavailableError{Err: err}
	}
	x, err := Build(ctx, offsetRows, supplierRows)
	if err != nil {
		return nil, &EnrichmentUnavailableError{Err: err}
	}
	log := logger.FromContext(ctx)
	log.Debug().
		Int("offset_labels", len(x.offsetLabels)).
		Int("supplier_accounts", len(x.supplierAccounts)).
		Msg("cross reference loaded")
	return x, nil
}

// Enrich loads the references and labels every aggregate. On error the
// aggregates are unchanged.
func (e Enricher) Enrich(ctx context.Context, aggs *supplier.Aggregates) error {
	x, err := e.Load(ctx)
	if err != nil {
		return err
	}
	x.Apply(aggs)
	return nil
}
