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
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sboehler/forecast/lib/config"
	"github.com/sboehler/forecast/lib/logger"
)

// Settings manages the flags which select and override the configuration.
type Settings struct {
	configPath string
	logLevel   string
	logFormat  string
}

// Setup configures the flags.
func (s *Settings) Setup(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.configPath, "config", "", "YAML configuration file")
	cmd.Flags().StringVar(&s.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&s.logFormat, "log-format", "", "log format (console, json)")
}

// Config loads the configuration and applies the flag overrides. The result
// is not validated.
func (s *Settings) Config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = s.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = s.logFormat
	}
	return cfg, nil
}

// Logger creates a logger writing to the command's error stream. Every
// entry carries a fresh run ID.
func (s *Settings) Logger(cmd *cobra.Command, cfg config.Config) (zerolog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}
	newLogger := logger.New
	if cfg.LogFormat == config.LogJSON {
		newLogger = logger.NewWithWriter
	}
	return newLogger(cmd.ErrOrStderr(), level).With().
		Str("run", uuid.NewString()).
		Str("command", cmd.Name()).
		Logger(), nil
}
