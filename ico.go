package appicon

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/k1LoW/errors"
	ico "github.com/sergeymakinen/go-ico"
)

// ICOFilename is the name of the optional Windows icon bundle.
const ICOFilename = "icon.ico"

// icoSizes are the renders bundled into icon.ico. All of them are
// pixel sizes the size table already produces.
var icoSizes = []int{16, 32, 64, 128, 256}

func (g *Generator) writeICO() (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	imgs := make([]image.Image, 0, len(icoSizes))
	for _, px := range icoSizes {
		imgs = append(imgs, RenderCached(px))
	}
	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, imgs); err != nil {
		return fmt.Errorf("failed to encode %s: %w", ICOFilename, err)
	}
	path := filepath.Join(g.outDir, ICOFilename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	g.logger.Info("wrote ico bundle", slog.String("filename", ICOFilename), slog.Int("count", len(imgs)))
	return nil
}
