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

// Package cmd is the main command file for Cobra
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sboehler/forecast/cmd/enrich"
	"github.com/sboehler/forecast/cmd/report"
)

// CreateRootCmd creates the root command.
func CreateRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "forecast",
		Short: "forecast totals open supplier orders by delivery month",
		Long: `forecast reads supplier order sheets and writes forecasting reports with the
open order amounts of every supplier per delivery month.`,

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.AddCommand(report.CreateCmd())
	c.AddCommand(enrich.CreateCmd())
	return c
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	c := CreateRootCmd()
	if err := c.Execute(); err != nil {
		fmt.Fprintln(c.ErrOrStderr(), err)
		os.Exit(1)
	}
}
