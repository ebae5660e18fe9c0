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

// Package config loads the forecast settings from defaults, an optional
// YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	// Embedded zone data, so that Location works without a system database.
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"

	"github.com/sboehler/forecast/lib/logger"
	"github.com/sboehler/forecast/lib/orders"
)

// Log formats.
const (
	LogConsole = "console"
	LogJSON    = "json"
)

// Config holds the settings shared by all commands.
type Config struct {
	Year             int    `yaml:"year"`
	OrdersSheet      string `yaml:"orders_sheet"`
	ReportSheet      string `yaml:"report_sheet"`
	SupplierSheet    string `yaml:"supplier_sheet"`
	OffsetSheet      string `yaml:"offset_sheet"`
	Timezone         string `yaml:"timezone"`
	CSVDelimiter     string `yaml:"csv_delimiter"`
	ResetOnEmptyCode bool   `yaml:"reset_on_empty_code"`
	Concurrency      int    `yaml:"concurrency"`
	LogLevel         string `yaml:"log_level"`
	LogFormat        string `yaml:"log_format"`
}

// Default returns the default settings.
func Default() Config {
	return Config{
		Year:          orders.DefaultYear,
		OrdersSheet:   "Sheet1",
		ReportSheet:   "Report Previsioni",
		SupplierSheet: "Sheet1",
		OffsetSheet:   "Foglio1",
		Timezone:      "Europe/Rome",
		CSVDelimiter:  ";",
		Concurrency:   4,
		LogLevel:      "info",
		LogFormat:     LogConsole,
	}
}

// Load returns the default settings, overridden by the YAML file at path
// (if path is not empty) and then by FORECAST_* environment variables. A
// .env file in the working directory is read first if it exists.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		if err := c.readFile(path); err != nil {
			return c, err
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return c, fmt.Errorf("reading .env: %w", err)
	}
	if err := c.applyEnv(); err != nil {
		return c, err
	}
	return c, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.SetStrict(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	var err error
	for _, s := range []struct {
		key string
		dst *string
	}{
		{"FORECAST_ORDERS_SHEET", &c.OrdersSheet},
		{"FORECAST_REPORT_SHEET", &c.ReportSheet},
		{"FORECAST_SUPPLIER_SHEET", &c.SupplierSheet},
		{"FORECAST_OFFSET_SHEET", &c.OffsetSheet},
		{"FORECAST_TIMEZONE", &c.Timezone},
		{"FORECAST_CSV_DELIMITER", &c.CSVDelimiter},
		{"FORECAST_LOG_LEVEL", &c.LogLevel},
		{"FORECAST_LOG_FORMAT", &c.LogFormat},
	} {
		if v, ok := os.LookupEnv(s.key); ok {
			*s.dst = v
		}
	}
	for _, s := range []struct {
		key string
		dst *int
	}{
		{"FORECAST_YEAR", &c.Year},
		{"FORECAST_CONCURRENCY", &c.Concurrency},
	} {
		if v, ok := os.LookupEnv(s.key); ok {
			n, e := strconv.Atoi(v)
			if e != nil {
				err = multierr.Append(err, fmt.Errorf("%s: invalid integer %q", s.key, v))
				continue
			}
			*s.dst = n
		}
	}
	if v, ok := os.LookupEnv("FORECAST_RESET_ON_EMPTY_CODE"); ok {
		b, e := strconv.ParseBool(v)
		if e != nil {
			err = multierr.Append(err, fmt.Errorf("FORECAST_RESET_ON_EMPTY_CODE: invalid boolean %q", v))
		} else {
			c.ResetOnEmptyCode = b
		}
	}
	return err
}

// Validate reports all invalid settings.
func (c Config) Validate() error {
	var err error
	if c.Year < 1900 || c.Year > 9999 {
		err = multierr.Append(err, fmt.Errorf("year %d out of range [1900, 9999]", c.Year))
	}
	for _, s := range []struct{ name, value string }{
		{"orders_sheet", c.OrdersSheet},
		{"report_sheet", c.ReportSheet},
		{"supplier_sheet", c.SupplierSheet},
		{"offset_sheet", c.OffsetSheet},
	} {
		if s.value == "" {
			err = multierr.Append(err, fmt.Errorf("%s must not be empty", s.name))
		}
	}
	if _, e := c.Location(); e != nil {
		err = multierr.Append(err, fmt.Errorf("timezone: %w", e))
	}
	if utf8.RuneCountInString(c.CSVDelimiter) != 1 {
		err = multierr.Append(err, fmt.Errorf("csv_delimiter %q must be a single character", c.CSVDelimiter))
	}
	if c.Concurrency < 1 {
		err = multierr.Append(err, fmt.Errorf("concurrency %d must be at least 1", c.Concurrency))
	}
	if _, e := logger.ParseLevel(c.LogLevel); e != nil {
		err = multierr.Append(err, fmt.Errorf("log_level: %w", e))
	}
	if c.LogFormat != LogConsole && c.LogFormat != LogJSON {
		err = multierr.Append(err, fmt.Errorf("log_format %q must be %s or %s", c.LogFormat, LogConsole, LogJSON))
	}
	return err
}

// Location loads the configured time zone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Delimiter returns the CSV field delimiter.
func (c Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSVDelimiter)
	return r
}
