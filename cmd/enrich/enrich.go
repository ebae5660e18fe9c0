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
	"context"
	"fmt"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"

	"github.com/sboehler/forecast/cmd/flags"
	"github.com/sboehler/forecast/lib/config"
	"github.com/sboehler/forecast/lib/logger"
	"github.com/sboehler/forecast/lib/report"
	"github.com/sboehler/forecast/lib/sheet"
	"github.com/sboehler/forecast/lib/xref"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	var r runner
	c := &cobra.Command{
		Use:   "enrich <report.xlsx>",
		Short: "Add the offset account column to a forecasting report",
		Long: `Insert the offset account of every supplier as the third column of an existing
forecasting report. Offset columns left by earlier runs are replaced.`,

		Args: cobra.ExactArgs(1),

		RunE: r.run,
	}
	r.setupFlags(c)
	return c
}

type runner struct {
	flags.Settings

	supplierRef, offsetRef string
	sheet                  string
	output                 string
}

func (r *runner) setupFlags(c *cobra.Command) {
	r.Settings.Setup(c)
	c.Flags().StringVar(&r.supplierRef, "supplier-ref", "", "supplier registry file")
	c.Flags().StringVar(&r.offsetRef, "offset-ref", "", "offset account file")
	c.MarkFlagRequired("supplier-ref")
	c.MarkFlagRequired("offset-ref")
	c.Flags().StringVar(&r.sheet, "sheet", "", "name of the report sheet (default from configuration)")
	c.Flags().StringVarP(&r.output, "output", "o", "", "output file (default: replace the input)")
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	cfg, err := r.Config(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("sheet") {
		cfg.ReportSheet = r.sheet
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := r.Logger(cmd, cfg)
	if err != nil {
		return err
	}
	return r.execute(logger.WithContext(cmd.Context(), log), cfg, args[0])
}

func (r *runner) execute(ctx context.Context, cfg config.Config, path string) (err error) {
	opts := sheet.Options{Comma: cfg.Delimiter()}
	e := xref.Enricher{
		Offset: func() (sheet.Rows, error) {
			return sheet.Open(r.offsetRef, cfg.OffsetSheet, opts)
		},
		Supplier: func() (sheet.Rows, error) {
			return sheet.Open(r.supplierRef, cfg.SupplierSheet, opts)
		},
	}
	x, err := e.Load(ctx)
	if err != nil {
		return err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return &sheet.SourceUnavailableError{Path: path, Sheet: cfg.ReportSheet, Err: err}
	}
	defer func() { err = multierr.Append(err, f.Close()) }()
	if err := report.InsertOffsetColumn(f, cfg.ReportSheet, x.Label); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}
	target := path
	if r.output != "" {
		target = r.output
	}
	if err := atomic.WriteFile(target, buf); err != nil {
		return err
	}
	log := logger.FromContext(ctx)
	log.Info().Str("file", target).Msg("inserted offset accounts")
	return nil
}
