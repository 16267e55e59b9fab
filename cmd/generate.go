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

var (
	out         string
	author      string
	withICO     bool
	withPreview bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate app icons and Contents.json",
	Long:  `generate app icons and Contents.json.`,
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
			appicon.WithAuthor(cfg.Author),
			appicon.WithICO(withICO || boolValue(cfg.ICO)),
			appicon.WithPreview(withPreview || boolValue(cfg.Preview)),
		}
		if out != "" {
			opts = append(opts, appicon.WithOutDir(out))
		}
		if author != "" {
			opts = append(opts, appicon.WithAuthor(author))
		}
		g, err := appicon.New(opts...)
		if err != nil {
			return err
		}
		if err := g.Generate(ctx); err != nil {
			return err
		}
		cmd.Println(color.GreenString("Generated %d icons in %s", len(appicon.UniquePixelSizes()), g.OutDir()))
		return nil
	},
}

func boolValue(b *bool) bool {
	return b != nil && *b
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&out, "out", "o", "", "output directory")
	generateCmd.Flags().StringVarP(&author, "author", "", "", "generator identifier for the manifest info block")
	generateCmd.Flags().BoolVarP(&withICO, "ico", "", false, "also bundle a Windows icon.ico")
	generateCmd.Flags().BoolVarP(&withPreview, "preview", "", false, "also write a preview contact sheet")
}
