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
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sboehler/forecast/lib/common/regex"
)

// DateFlag manages a flag to determine a date.
type DateFlag time.Time

var _ pflag.Value = (*DateFlag)(nil)

func (tf DateFlag) String() string {
	if tf.Value().IsZero() {
		return ""
	}
	return tf.Value().Format("2006-01-02")
}

// Set implements pflag.Value.
func (tf *DateFlag) Set(v string) error {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return err
	}
	*tf = (DateFlag)(t)
	return nil
}

// Type implements pflag.Value.
func (tf DateFlag) Type() string {
	return "YYYY-MM-DD"
}

// Value returns the flag value.
func (tf DateFlag) Value() time.Time {
	return time.Time(tf)
}

// In returns the flag's calendar date at midnight in loc, or the zero time
// if the flag has not been set.
func (tf DateFlag) In(loc *time.Location) time.Time {
	v := tf.Value()
	if v.IsZero() {
		return v
	}
	return time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, loc)
}

// RegexFlag manages a flag to get a regex.
type RegexFlag struct {
	rxs regex.Regexes
}

var _ pflag.Value = (*RegexFlag)(nil)

func (rf RegexFlag) String() string {
	var ss []string
	for _, r := range rf.rxs {
		ss = append(ss, r.String())
	}
	return strings.Join(ss, ",")
}

// Set implements pflag.Set.
func (rf *RegexFlag) Set(v string) error {
	t, err := regexp.Compile(v)
	if err != nil {
		return err
	}
	rf.rxs.Add(t)
	return nil
}

// Type implements pflag.Type.
func (rf RegexFlag) Type() string {
	return "<regex>"
}

// Value returns the regexes.
func (rf *RegexFlag) Value() regex.Regexes {
	return rf.rxs
}

// Format is an output format.
type Format string

// Output formats.
const (
	XLSX Format = "xlsx"
	Text Format = "text"
	CSV  Format = "csv"
)

// FormatFlag manages a flag to select the output format.
type FormatFlag struct {
	val Format
}

var _ pflag.Value = (*FormatFlag)(nil)

func (ff FormatFlag) String() string {
	return string(ff.Value())
}

// Set implements pflag.Value.
func (ff *FormatFlag) Set(v string) error {
	switch f := Format(strings.ToLower(v)); f {
	case XLSX, Text, CSV:
		ff.val = f
		return nil
	}
	return fmt.Errorf("invalid format %q, want one of xlsx, text, csv", v)
}

// Type implements pflag.Value.
func (ff FormatFlag) Type() string {
	return "xlsx|text|csv"
}

// Value returns the format, xlsx if unset.
func (ff FormatFlag) Value() Format {
	if ff.val == "" {
		return XLSX
	}
	return ff.val
}

// LocaleFlag manages a flag to select the number formatting locale.
type LocaleFlag struct {
	tag *language.Tag
}

var _ pflag.Value = (*LocaleFlag)(nil)

func (lf LocaleFlag) String() string {
	if lf.tag == nil {
		return ""
	}
	return lf.tag.String()
}

// Set implements pflag.Value.
func (lf *LocaleFlag) Set(v string) error {
	t, err := language.Parse(v)
	if err != nil {
		return err
	}
	lf.tag = &t
	return nil
}

// Type implements pflag.Value.
func (lf LocaleFlag) Type() string {
	return "<locale>"
}

// Printer returns a printer for the locale, or nil if no locale is set.
func (lf LocaleFlag) Printer() *message.Printer {
	if lf.tag == nil {
		return nil
	}
	return message.NewPrinter(*lf.tag)
}
