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

package enrich

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/sboehler/forecast/cmd/cmdtest"
	"github.com/sboehler/forecast/lib/common/date"
	"github.com/sboehler/forecast/lib/model/supplier"
	"github.com/sboehler/forecast/lib/report"
	"github.com/sboehler/forecast/lib/xref"
)

const sheetName = "Report Previsioni"

var refs = []string{
	"--supplier-ref", filepath.Join("testdata", "suppliers.csv"),
	"--offset-ref", filepath.Join("testdata", "offsets.csv"),
}

func writeReport(t *testing.T) string {
	t.Helper()
	aggs := supplier.New()
	for _, s := range []struct{ code, name string }{{"F002", "Beta Srl"}, {"F001", "Acme SpA"}} {
		a := aggs.GetOrCreate(s.code)
		a.Name = s.name
		a.AddMonth(time.May, decimal.NewFromInt(10))
	}
	f, err := report.New(aggs, 2025, date.Date(2025, time.July, 1)).Workbook(sheetName)
	if err != nil {
		t.Fatalf("Workbook() returned error: %v", err)
	}
	defer f.Close()
	path := filepath.Join(t.TempDir(), "forecasting.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() returned error: %v", err)
	}
	return path
}

func readColumns(t *testing.T, path string, cells ...string) []string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() returned error: %v", err)
	}
	defer f.Close()
	var res []string
	for _, c := range cells {
		v, err := f.GetCellValue(sheetName, c, excelize.Options{RawCellValue: true})
		if err != nil {
			t.Fatalf("GetCellValue(%s) returned error: %v", c, err)
		}
		res = append(res, v)
	}
	return res
}

func TestEnrichInPlace(t *testing.T) {
	path := writeReport(t)

	for i := 0; i < 2; i++ {
		cmdtest.Run(t, CreateCmd(), append(refs, path))
	}

	got := readColumns(t, path, "C1", "D1", "C2", "C3", "I2")
	want := []string{"Contropartita", "Antecedenti 2025", "", "Servizi", "10"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestEnrichOutput(t *testing.T) {
	path := writeReport(t)
	out := filepath.Join(t.TempDir(), "enriched.xlsx")

	cmdtest.Run(t, CreateCmd(), append([]string{"-o", out}, append(refs, path)...))

	if got := readColumns(t, path, "C1"); got[0] != "Antecedenti 2025" {
		t.Errorf("input was modified: C1 = %q", got[0])
	}
	if got := readColumns(t, out, "C1"); got[0] != "Contropartita" {
		t.Errorf("output C1 = %q, want Contropartita", got[0])
	}
}

func TestEnrichUnavailable(t *testing.T) {
	path := writeReport(t)
	args := []string{
		"--supplier-ref", filepath.Join("testdata", "missing.csv"),
		"--offset-ref", filepath.Join("testdata", "offsets.csv"),
		path,
	}

	_, _, err := cmdtest.Execute(CreateCmd(), args)

	if !errors.Is(err, xref.ErrEnrichmentUnavailable) {
		t.Errorf("got error %v, want %v", err, xref.ErrEnrichmentUnavailable)
	}
	if got := readColumns(t, path, "C1"); got[0] != "Antecedenti 2025" {
		t.Errorf("report was modified: C1 = %q", got[0])
	}
}

func TestEnrichWrongSheet(t *testing.T) {
	path := writeReport(t)
	args := append([]string{"--sheet", "Altro"}, append(refs, path)...)

	if _, _, err := cmdtest.Execute(CreateCmd(), args); err == nil {
		t.Errorf("expected an error for a missing sheet")
	}
}
