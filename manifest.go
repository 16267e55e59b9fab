package appicon

import (
	"encoding/json"
	"fmt"

	"github.com/k1LoW/errors"
)

// ManifestFilename is the name of the icon set manifest.
const ManifestFilename = "Contents.json"

// ManifestImage is one size/idiom/scale entry of the icon set.
type ManifestImage struct {
	Size     string `json:"size"`
	Idiom    string `json:"idiom"`
	Filename string `json:"filename"`
	Scale    string `json:"scale"`
}

type ManifestInfo struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

// Manifest is the Contents.json document of an AppIcon.appiconset.
type Manifest struct {
	Images []ManifestImage `json:"images"`
	Info   ManifestInfo    `json:"info"`
}

// IconFilename returns the conventional filename for a rendered pixel
// size.
func IconFilename(size int) string {
	return fmt.Sprintf("icon_%dx%d.png", size, size)
}

func entry(size, idiom string, pixelSize int, scale string) ManifestImage {
	return ManifestImage{
		Size:     size,
		Idiom:    idiom,
		Filename: IconFilename(pixelSize),
		Scale:    scale,
	}
}

// NewManifest returns the fixed manifest covering the iOS and macOS
// icon slots. Filenames are derived from pixel sizes so they stay
// consistent with what the driver renders.
func NewManifest(author string) *Manifest {
	return &Manifest{
		Images: []ManifestImage{
			// iPhone notifications
			entry("20x20", "iphone", 40, "2x"),
			entry("20x20", "iphone", 60, "3x"),
			// iPhone settings
			entry("29x29", "iphone", 58, "2x"),
			entry("29x29", "iphone", 87, "3x"),
			// iPhone spotlight
			entry("40x40", "iphone", 80, "2x"),
			entry("40x40", "iphone", 120, "3x"),
			// iPhone app
			entry("60x60", "iphone", 120, "2x"),
			entry("60x60", "iphone", 180, "3x"),
			// iPad notifications
			entry("20x20", "ipad", 20, "1x"),
			entry("20x20", "ipad", 40, "2x"),
			// iPad settings
			entry("29x29", "ipad", 29, "1x"),
			entry("29x29", "ipad", 58, "2x"),
			// iPad spotlight
			entry("40x40", "ipad", 40, "1x"),
			entry("40x40", "ipad", 80, "2x"),
			// iPad app
			entry("76x76", "ipad", 76, "1x"),
			entry("76x76", "ipad", 152, "2x"),
			// iPad Pro
			entry("83.5x83.5", "ipad", 167, "2x"),
			// App Store
			entry("1024x1024", "ios-marketing", 1024, "1x"),
			// macOS
			entry("16x16", "mac", 16, "1x"),
			entry("16x16", "mac", 32, "2x"),
			entry("32x32", "mac", 32, "1x"),
			entry("32x32", "mac", 64, "2x"),
			entry("128x128", "mac", 128, "1x"),
			entry("128x128", "mac", 256, "2x"),
			entry("256x256", "mac", 256, "1x"),
			entry("256x256", "mac", 512, "2x"),
			entry("512x512", "mac", 512, "1x"),
			entry("512x512", "mac", 1024, "2x"),
		},
		Info: ManifestInfo{
			Version: 1,
			Author:  author,
		},
	}
}

// Validate checks that every filename the manifest references belongs
// to a pixel size in rendered.
func (m *Manifest) Validate(rendered []int) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	produced := make(map[string]bool, len(rendered))
	for _, size := range rendered {
		produced[IconFilename(size)] = true
	}
	for _, img := range m.Images {
		if !produced[img.Filename] {
			return fmt.Errorf("manifest references %s (%s %s %s) but no icon of that size was rendered", img.Filename, img.Size, img.Idiom, img.Scale)
		}
	}
	return nil
}

// Bytes renders the manifest as indented JSON with a trailing newline.
func (m *Manifest) Bytes() (_ []byte, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return append(b, '\n'), nil
}
