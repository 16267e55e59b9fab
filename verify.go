package appicon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/corona10/goimagehash"
	"github.com/k1LoW/errors"
)

// phashThreshold is the maximum perceptual hash distance at which two
// renders are still considered the same icon.
const phashThreshold = 5

// Verify re-renders every unique pixel size and checks the on-disk
// output against it: exact checksum first, perceptual hash as a
// fallback so that images re-encoded by other tools still pass. It
// also checks the manifest consistency rule.
func (g *Generator) Verify(ctx context.Context) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	for _, px := range UniquePixelSizes() {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := IconFilename(px)
		path := filepath.Join(g.outDir, name)
		got, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read icon %s: %w", path, err)
		}
		want := RenderCached(px)
		var buf bytes.Buffer
		if err := png.Encode(&buf, want); err != nil {
			return fmt.Errorf("failed to encode reference render for size %d: %w", px, err)
		}
		if crc32.ChecksumIEEE(got) == crc32.ChecksumIEEE(buf.Bytes()) {
			g.logger.Info("verified icon", slog.Int("size", px), slog.String("filename", name))
			continue
		}
		if err := g.verifyPerceptual(px, name, got); err != nil {
			return err
		}
	}
	if err := g.verifyManifest(); err != nil {
		return err
	}
	g.logger.Info("verify completed", slog.Int("count", len(UniquePixelSizes())), slog.String("dir", g.outDir))
	return nil
}

// verifyPerceptual compares an on-disk icon that failed the checksum
// comparison against the reference render by perceptual hash.
func (g *Generator) verifyPerceptual(px int, name string, data []byte) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode icon %s: %w", name, err)
	}
	b := img.Bounds()
	if b.Dx() != px || b.Dy() != px {
		return fmt.Errorf("icon %s is %dx%d, want %dx%d", name, b.Dx(), b.Dy(), px, px)
	}
	gotHash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return fmt.Errorf("failed to hash icon %s: %w", name, err)
	}
	wantHash, err := goimagehash.PerceptionHash(RenderCached(px))
	if err != nil {
		return fmt.Errorf("failed to hash reference render for size %d: %w", px, err)
	}
	distance, err := gotHash.Distance(wantHash)
	if err != nil {
		return fmt.Errorf("failed to compare hashes for %s: %w", name, err)
	}
	if distance >= phashThreshold {
		return fmt.Errorf("icon %s does not match the reference render (distance %d)", name, distance)
	}
	g.logger.Info("verified icon", slog.Int("size", px), slog.String("filename", name), slog.Int("distance", distance))
	return nil
}

func (g *Generator) verifyManifest() (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	path := filepath.Join(g.outDir, ManifestFilename)
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("failed to unmarshal manifest %s: %w", path, err)
	}
	if err := m.Validate(UniquePixelSizes()); err != nil {
		return err
	}
	g.logger.Info("verified manifest", slog.String("filename", ManifestFilename))
	return nil
}
