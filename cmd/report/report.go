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

package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/sboehler/forecast/cmd/flags"
	"github.com/sboehler/forecast/lib/common/predicate"
	"github.com/sboehler/forecast/lib/common/table"
	"github.com/sboehler/forecast/lib/config"
	"github.com/sboehler/forecast/lib/logger"
	"github.com/sboehler/forecast/lib/model/supplier"
	"github.com/sboehler/forecast/lib/orders"
	"github.com/sboehler/forecast/lib/report"
	"github.com/sboehler/forecast/lib/sheet"
	"github.com/sboehler/forecast/lib/xref"
)

// DefaultOutput is the name of the report written next to a single input.
const DefaultOutput = "forecasting.xlsx"

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	var r runner
	c := &cobra.Command{
		Use:   "report <orders-file>...",
		Short: "Create a forecasting report from supplier order sheets",
		Long: `Scan supplier order sheets (xlsx, xls or csv), total the open orders of each
supplier by delivery month and write a forecasting report. With --supplier-ref
and --offset-ref, every supplier is labelled with its offset account.`,

		Args: cobra.MinimumNArgs(1),

		RunE: r.run,
	}
	r.setupFlags(c)
	return c
}

type runner struct {
	flags.Settings

	// scanning
	year             int
	sheet            string
	resetOnEmptyCode bool
	suppliers        flags.RegexFlag

	// enrichment
	supplierRef, offsetRef string
	requireEnrichment      bool

	// output
	format    flags.FormatFlag
	output    string
	updated   flags.DateFlag
	color     bool
	thousands bool
	locale    flags.LocaleFlag
}

func (r *runner) setupFlags(c *cobra.Command) {
	r.Settings.Setup(c)
	c.Flags().IntVar(&r.year, "year", 0, "report year (default from configuration)")
	c.Flags().StringVar(&r.sheet, "sheet", "", "name of the orders sheet (default from configuration)")
	c.Flags().BoolVar(&r.resetOnEmptyCode, "reset-on-empty-code", false, "a supplier header without code ends the current supplier")
	c.Flags().Var(&r.suppliers, "supplier", "only report suppliers whose name or code matches the regex")
	c.Flags().StringVar(&r.supplierRef, "supplier-ref", "", "supplier registry file")
	c.Flags().StringVar(&r.offsetRef, "offset-ref", "", "offset account file")
	c.MarkFlagsRequiredTogether("supplier-ref", "offset-ref")
	c.Flags().BoolVar(&r.requireEnrichment, "require-enrichment", false, "fail if the reference files cannot be read")
	c.Flags().VarP(&r.format, "format", "f", "output format")
	c.Flags().StringVarP(&r.output, "output", "o", "", "output file, or directory for several inputs")
	c.Flags().Var(&r.updated, "updated", "date of the update stamp (default today)")
	c.Flags().BoolVar(&r.color, "color", true, "print output in color")
	c.Flags().BoolVarP(&r.thousands, "thousands", "k", false, "show numbers in units of 1000")
	c.Flags().Var(&r.locale, "locale", "format numbers for the given locale, e.g. it")
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	cfg, err := r.config(cmd)
	if err != nil {
		return err
	}
	log, err := r.Logger(cmd, cfg)
	if err != nil {
		return err
	}
	return r.execute(logger.WithContext(cmd.Context(), log), cmd, cfg, args)
}

func (r *runner) config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := r.Config(cmd)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("year") {
		cfg.Year = r.year
	}
	if cmd.Flags().Changed("sheet") {
		cfg.OrdersSheet = r.sheet
	}
	if cmd.Flags().Changed("reset-on-empty-code") {
		cfg.ResetOnEmptyCode = r.resetOnEmptyCode
	}
	return cfg, cfg.Validate()
}

func (r *runner) execute(ctx context.Context, cmd *cobra.Command, cfg config.Config, args []string) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	x, err := r.crossReference(ctx, cfg)
	if err != nil {
		return err
	}
	var (
		reports = make([]*report.Report, len(args))
		errs    = make([]error, len(args))
		updated = r.updated.In(loc)
		g       errgroup.Group
		bar     *pb.ProgressBar
	)
	if len(args) > 1 {
		bar = pb.New(len(args)).SetWriter(cmd.ErrOrStderr()).Start()
	}
	if updated.IsZero() {
		updated = time.Now()
	}
	g.SetLimit(cfg.Concurrency)
	for i, arg := range args {
		i, arg := i, arg
		g.Go(func() error {
			if bar != nil {
				defer bar.Increment()
			}
			rep, err := r.build(ctx, cfg, x, arg, updated)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", arg, err)
				return nil
			}
			rep.Location = loc
			reports[i] = rep
			if r.format.Value() == flags.XLSX {
				errs[i] = r.writeWorkbook(rep, cfg, r.outputPath(arg, len(args)))
			}
			return nil
		})
	}
	g.Wait()
	if bar != nil {
		bar.Finish()
	}
	if err := multierr.Combine(errs...); err != nil {
		return err
	}
	if r.format.Value() == flags.XLSX {
		return nil
	}
	return r.render(cmd, cfg, reports)
}

// crossReference loads the reference files. It returns nil if no reference
// files were given, or if they cannot be read and enrichment is optional.
func (r *runner) crossReference(ctx context.Context, cfg config.Config) (*xref.CrossReference, error) {
	if r.supplierRef == "" && r.offsetRef == "" {
		return nil, nil
	}
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
		if r.requireEnrichment {
			return nil, err
		}
		log := logger.FromContext(ctx)
		log.Warn().Err(err).Msg("writing report without offset accounts")
		return nil, nil
	}
	return x, nil
}

func (r *runner) build(ctx context.Context, cfg config.Config, x *xref.CrossReference, path string, updated time.Time) (*report.Report, error) {
	log := logger.FromContext(ctx).With().Str("file", path).Logger()
	rows, err := sheet.Open(path, cfg.OrdersSheet, sheet.Options{Comma: cfg.Delimiter()})
	if err != nil {
		return nil, err
	}
	s := orders.Scanner{Year: cfg.Year, ResetOnEmptyCode: cfg.ResetOnEmptyCode}
	aggs, stats, err := s.Scan(logger.WithContext(ctx, log), rows)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("rows", stats.Rows).
		Int("suppliers", aggs.Len()).
		Int("accepted", stats.Accepted).
		Int("skipped", stats.Skipped()).
		Msg("scanned orders")
	if x != nil {
		x.Apply(aggs)
	}
	aggs = aggs.Filter(predicate.Matches(r.suppliers.Value(),
		func(a *supplier.Aggregate) string { return a.Name },
		func(a *supplier.Aggregate) string { return a.Code },
	))
	return report.New(aggs, cfg.Year, updated), nil
}

// outputPath returns the workbook path for the given input. A single input
// is written to --output or next to the input. Several inputs are written
// to the --output directory, or next to each input, named after the input.
func (r *runner) outputPath(input string, n int) string {
	if n == 1 {
		if r.output != "" {
			return r.output
		}
		return filepath.Join(filepath.Dir(input), DefaultOutput)
	}
	dir := r.output
	if dir == "" {
		dir = filepath.Dir(input)
	}
	base := filepath.Base(input)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+"-"+DefaultOutput)
}

func (r *runner) writeWorkbook(rep *report.Report, cfg config.Config, path string) (err error) {
	f, err := rep.Workbook(cfg.ReportSheet)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}
	return atomic.WriteFile(path, buf)
}

func (r *runner) render(cmd *cobra.Command, cfg config.Config, reports []*report.Report) error {
	var renderer interface {
		Render(*table.Table, io.Writer) error
	}
	if r.format.Value() == flags.CSV {
		renderer = &table.CSVRenderer{Comma: cfg.Delimiter()}
	} else {
		renderer = &table.TextRenderer{
			Color:     r.color,
			Thousands: r.thousands,
			Round:     2,
			Printer:   r.locale.Printer(),
		}
	}
	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()
	for _, rep := range reports {
		if err := renderer.Render(rep.Table(), out); err != nil {
			return err
		}
	}
	return nil
}
