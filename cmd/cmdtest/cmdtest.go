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

// Package cmdtest runs commands in tests.
package cmdtest

import (
	"bytes"
	"sync"
	"testing"

	"github.com/spf13/cobra"
)

// Run executes the command with the given arguments and returns its
// standard output. The test fails if the command returns an error.
func Run(t *testing.T, cmd *cobra.Command, args []string) []byte {
	t.Helper()
	out, stderr, err := Execute(cmd, args)
	if err != nil {
		t.Fatalf("%s %v: %v\n%s", cmd.Name(), args, err, stderr)
	}
	return out
}

// Execute executes the command with the given arguments and returns its
// standard output, its error output and its error.
func Execute(cmd *cobra.Command, args []string) ([]byte, []byte, error) {
	var (
		stdout bytes.Buffer
		stderr syncBuffer
	)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return stdout.Bytes(), stderr.Bytes(), err
}

// syncBuffer is written to by loggers and progress bars from several
// goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Bytes()
}
