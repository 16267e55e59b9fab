package appicon

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/k1LoW/errors"
)

const (
	// DefaultOutDir is the icon set location inside the consuming
	// application's resource bundle.
	DefaultOutDir = "Shared/Resources/Assets.xcassets/AppIcon.appiconset"
	// DefaultAuthor is the generator identifier recorded in the
	// manifest info block.
	DefaultAuthor = "xcode"
)

// Generator renders the icon set and writes it to the output
// directory.
type Generator struct {
	outDir  string
	author  string
	ico     bool
	preview bool
	logger  *slog.Logger
}

type Option func(*Generator) error

func WithOutDir(dir string) Option {
	return func(g *Generator) error {
		if dir != "" {
			g.outDir = dir
		}
		return nil
	}
}

func WithAuthor(author string) Option {
	return func(g *Generator) error {
		if author != "" {
			g.author = author
		}
		return nil
	}
}

// WithICO also bundles the small renders into a Windows icon.ico.
func WithICO(enabled bool) Option {
	return func(g *Generator) error {
		g.ico = enabled
		return nil
	}
}

// WithPreview also writes a contact sheet of every unique size.
func WithPreview(enabled bool) Option {
	return func(g *Generator) error {
		g.preview = enabled
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		if logger != nil {
			g.logger = logger
		}
		return nil
	}
}

// New creates a new Generator.
func New(opts ...Option) (_ *Generator, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	g := &Generator{
		outDir: DefaultOutDir,
		author: DefaultAuthor,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// OutDir returns the output directory the generator writes to.
func (g *Generator) OutDir() string {
	return g.outDir
}

// Generate renders every unique pixel size of the size table, writes
// the PNGs and the manifest, and, if enabled, the ICO bundle and the
// preview sheet. Output fully overwrites any prior run.
func (g *Generator) Generate(ctx context.Context) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", g.outDir, err)
	}
	var rendered []int
	seen := make(map[int]bool, len(iconSizes))
	for _, e := range iconSizes {
		if err := ctx.Err(); err != nil {
			return err
		}
		px := e.PixelSize()
		if seen[px] {
			g.logger.Info("skipped duplicate size", slog.Float64("base", e.Base), slog.Int("scale", e.Scale), slog.Int("size", px))
			continue
		}
		seen[px] = true
		if px >= 512 {
			g.logger.Info("rendering large icon", slog.Int("size", px))
		}
		img := RenderCached(px)
		name := IconFilename(px)
		if err := writePNG(filepath.Join(g.outDir, name), img); err != nil {
			return err
		}
		g.logger.Info("generated icon", slog.Int("size", px), slog.String("filename", name))
		rendered = append(rendered, px)
	}

	m := NewManifest(g.author)
	if err := m.Validate(rendered); err != nil {
		return err
	}
	b, err := m.Bytes()
	if err != nil {
		return err
	}
	manifestPath := filepath.Join(g.outDir, ManifestFilename)
	if err := os.WriteFile(manifestPath, b, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", manifestPath, err)
	}
	g.logger.Info("wrote manifest", slog.String("filename", ManifestFilename))

	if g.ico {
		if err := g.writeICO(); err != nil {
			return err
		}
	}
	if g.preview {
		if err := g.writePreview(); err != nil {
			return err
		}
	}
	g.logger.Info("generate completed", slog.Int("count", len(rendered)), slog.String("dir", g.outDir))
	return nil
}

func writePNG(path string, img image.Image) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
