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

package date

import (
	"time"
)

// Interval is a time interval.
type Interval int

const (
	// Daily is a daily interval.
	Daily Interval = iota
	// Monthly is a monthly interval.
	Monthly
	// Yearly is a yearly interval.
	Yearly
)

func (p Interval) String() string {
	switch p {
	case Daily:
		return "daily"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	}
	return ""
}

// Date creates a new date at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Day drops the time of day, keeping the calendar date.
func Day(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// StartOf returns the first date in the given period which
// contains the receiver.
func StartOf(d time.Time, p Interval) time.Time {
	switch p {
	case Daily:
		return Day(d)
	case Monthly:
		return Date(d.Year(), d.Month(), 1)
	case Yearly:
		return Date(d.Year(), 1, 1)
	}
	return d
}

// EndOf returns the last date in the given period that contains
// the receiver.
func EndOf(d time.Time, p Interval) time.Time {
	switch p {
	case Daily:
		return Day(d)
	case Monthly:
		return StartOf(d, Monthly).AddDate(0, 1, -1)
	case Yearly:
		return Date(d.Year(), 12, 31)
	}
	return d
}

// EndOfYear returns December 31 of the given year.
func EndOfYear(year int) time.Time {
	return EndOf(Date(year, 1, 1), Yearly)
}

// Months returns January through December.
func Months() []time.Month {
	res := make([]time.Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		res = append(res, m)
	}
	return res
}

var italianMonths = [...]string{
	"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
	"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
}

// MonthName returns the Italian name of the month.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return italianMonths[m-1]
}

// Stamp formats t as DD/MM/YYYY in the given location.
func Stamp(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("02/01/2006")
}
