package appicon

import (
	"image"
	"log/slog"
	"path/filepath"

	"github.com/k1LoW/errors"
	xdraw "golang.org/x/image/draw"
)

// PreviewFilename is the name of the optional contact sheet.
const PreviewFilename = "preview.png"

const (
	previewCell = 64
	previewCols = 8
)

// writePreview composes a contact sheet with one cell per unique pixel
// size, in size table order.
func (g *Generator) writePreview() (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	sizes := UniquePixelSizes()
	rows := (len(sizes) + previewCols - 1) / previewCols
	sheet := image.NewRGBA(image.Rect(0, 0, previewCols*previewCell, rows*previewCell))
	for i, px := range sizes {
		x := (i % previewCols) * previewCell
		y := (i / previewCols) * previewCell
		cell := image.Rect(x, y, x+previewCell, y+previewCell)
		src := RenderCached(px)
		xdraw.CatmullRom.Scale(sheet, cell, src, src.Bounds(), xdraw.Over, nil)
	}
	path := filepath.Join(g.outDir, PreviewFilename)
	if err := writePNG(path, sheet); err != nil {
		return err
	}
	g.logger.Info("wrote preview sheet", slog.String("filename", PreviewFilename), slog.Int("count", len(sizes)))
	return nil
}
