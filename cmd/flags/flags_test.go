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

package flags

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/sboehler/forecast/lib/common/date"
)

func TestFormatFlag(t *testing.T) {
	var f FormatFlag
	if got := f.Value(); got != XLSX {
		t.Errorf("default Value() = %q, want %q", got, XLSX)
	}
	if err := f.Set("CSV"); err != nil {
		t.Fatalf("Set(CSV) returned error: %v", err)
	}
	if got := f.Value(); got != CSV {
		t.Errorf("Value() = %q, want %q", got, CSV)
	}
	if err := f.Set("pdf"); err == nil {
		t.Errorf("Set(pdf) returned no error")
	}
}

func TestDateFlag(t *testing.T) {
	var f DateFlag
	if got := f.Value(); !got.IsZero() {
		t.Errorf("Value() on unset flag = %v, want zero time", got)
	}
	if err := f.Set("2025-01-31"); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}
	if got, want := f.Value(), date.Date(2025, time.January, 31); !got.Equal(want) {
		t.Errorf("Value() = %v, want %v", got, want)
	}
	if err := f.Set("31/01/2025"); err == nil {
		t.Errorf("Set(31/01/2025) returned no error")
	}
}

func TestDateFlagIn(t *testing.T) {
	var f DateFlag
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	if got := f.In(ny); !got.IsZero() {
		t.Errorf("In() on unset flag = %v, want zero time", got)
	}
	if err := f.Set("2025-03-05"); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}
	if got, want := date.Stamp(f.In(ny), ny), "05/03/2025"; got != want {
		t.Errorf("Stamp(In()) = %q, want %q", got, want)
	}
}

func TestLocaleFlag(t *testing.T) {
	var f LocaleFlag
	if f.Printer() != nil {
		t.Errorf("Printer() without locale is not nil")
	}
	if err := f.Set("it"); err != nil {
		t.Fatalf("Set(it) returned error: %v", err)
	}
	if got, want := f.Printer().Sprintf("%d", 1234567), "1.234.567"; got != want {
		t.Errorf("Sprintf() = %q, want %q", got, want)
	}
}

func TestRegexFlag(t *testing.T) {
	var f RegexFlag
	for _, v := range []string{"^Acme", "F00[12]"} {
		if err := f.Set(v); err != nil {
			t.Fatalf("Set(%q) returned error: %v", v, err)
		}
	}
	if !f.Value().MatchString("F002") || f.Value().MatchString("Beta") {
		t.Errorf("unexpected matches for %s", f.String())
	}
	if err := f.Set("("); err == nil {
		t.Errorf("Set(\"(\") returned no error")
	}
}

func TestSettingsLogFormat(t *testing.T) {
	tests := []struct {
		args []string
		json bool
	}{
		{args: nil},
		{args: []string{"--log-format", "json"}, json: true},
	}
	for _, test := range tests {
		t.Run(strings.Join(test.args, " "), func(t *testing.T) {
			var (
				s   Settings
				buf bytes.Buffer
				cmd = &cobra.Command{Use: "report", RunE: func(*cobra.Command, []string) error { return nil }}
			)
			s.Setup(cmd)
			cmd.SetErr(&buf)
			cmd.SetArgs(append([]string{"--log-level", "debug"}, test.args...))
			if err := cmd.Execute(); err != nil {
				t.Fatal(err)
			}
			cfg, err := s.Config(cmd)
			if err != nil {
				t.Fatal(err)
			}
			if err := cfg.Validate(); err != nil {
				t.Fatal(err)
			}
			log, err := s.Logger(cmd, cfg)
			if err != nil {
				t.Fatal(err)
			}
			log.Debug().Msg("hello")
			if got := json.Valid(bytes.TrimSpace(buf.Bytes())); got != test.json {
				t.Errorf("json.Valid(%q) = %t, want %t", buf.String(), got, test.json)
			}
			if !strings.Contains(buf.String(), "hello") {
				t.Errorf("log output %q misses the message", buf.String())
			}
		})
	}
}
