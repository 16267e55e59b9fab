/*
Copyright © 2025 Steve Murr

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/k1LoW/errors"
	"github.com/spf13/cobra"
	"github.com/stevemurr/appicon/config"
	"github.com/stevemurr/appicon/handler/dot"
	"github.com/stevemurr/appicon/version"
)

var (
	profile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:          "appicon",
	Short:        "appicon generates the chat bubble app icon set",
	Long:         `appicon generates the chat bubble app icon set.`,
	SilenceUsage: true,
	Version:      fmt.Sprintf("%s (rev:%s)", version.Version, version.Revision),
}

type errorData struct {
	StackTraces any       `json:"stack_traces"`
	CreatedAt   time.Time `json:"created_at"`
	Version     string    `json:"version"`
	Revision    string    `json:"revision"`
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Write stack trace log to state directory
		d := &errorData{
			StackTraces: errors.StackTraces(err),
			CreatedAt:   time.Now(),
			Version:     version.Version,
			Revision:    version.Revision,
		}
		b, err := json.Marshal(d)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		} else {
			stateDir := config.StateHomePath()
			if err := os.MkdirAll(stateDir, 0o700); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "failed to create state directory %s: %v\n", stateDir, err)
			} else {
				dumpPath := filepath.Join(stateDir, "error.json")
				if err := os.WriteFile(dumpPath, b, 0o600); err != nil {
					_, _ = fmt.Fprintf(os.Stderr, "failed to write error.json to %s: %v\n", dumpPath, err)
				}
			}
		}
		os.Exit(1)
	}
}

// newLogger returns the dot-progress logger, or a plain text logger
// when --verbose is set.
func newLogger() (*slog.Logger, error) {
	if verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, nil)), nil
	}
	h, err := dot.New(slog.NewTextHandler(io.Discard, nil))
	if err != nil {
		return nil, err
	}
	return slog.New(h), nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "", "", "profile name")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every generated file instead of dot progress")
}
