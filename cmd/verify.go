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
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stevemurr/appicon"
	"github.com/stevemurr/appicon/config"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "verify generated icons against fresh renders",
	Long:  `verify generated icons against fresh renders.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := config.Load(profile)
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		opts := []appicon.Option{
			appicon.WithLogger(logger),
			appicon.WithOutDir(cfg.OutDir),
		}
		if out != "" {
			opts = append(opts, appicon.WithOutDir(out))
		}
		g, err := appicon.New(opts...)
		if err != nil {
			return err
		}
		if err := g.Verify(ctx); err != nil {
			return err
		}
		cmd.Println(color.GreenString("Verified %d icons in %s", len(appicon.UniquePixelSizes()), g.OutDir()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVarP(&out, "out", "o", "", "output directory")
}
