package appicon

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tenntenn/golden"
)

func TestManifestGolden(t *testing.T) {
	m := NewManifest(DefaultAuthor)
	got, err := m.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if os.Getenv("UPDATE_GOLDEN") != "" {
		golden.Update(t, "testdata", "contents", got)
		return
	}
	if diff := golden.Diff(t, "testdata", "contents", got); diff != "" {
		t.Error(diff)
	}
}

func TestManifestValidate(t *testing.T) {
	m := NewManifest(DefaultAuthor)
	if err := m.Validate(UniquePixelSizes()); err != nil {
		t.Errorf("manifest is inconsistent with the size table: %v", err)
	}
}

func TestManifestValidateMissingSize(t *testing.T) {
	m := NewManifest(DefaultAuthor)
	var rendered []int
	for _, size := range UniquePixelSizes() {
		if size == 180 {
			continue
		}
		rendered = append(rendered, size)
	}
	err := m.Validate(rendered)
	if err == nil {
		t.Fatal("Validate() = nil, want error for missing size 180")
	}
	if !strings.Contains(err.Error(), "icon_180x180.png") {
		t.Errorf("error %q does not name the missing file", err)
	}
}

func TestManifestIPhoneApp3x(t *testing.T) {
	m := NewManifest(DefaultAuthor)
	for _, img := range m.Images {
		if img.Size == "60x60" && img.Idiom == "iphone" && img.Scale == "3x" {
			if img.Filename != "icon_180x180.png" {
				t.Errorf("iPhone app 60x60 3x filename = %s, want icon_180x180.png", img.Filename)
			}
			return
		}
	}
	t.Fatal("no iPhone app 60x60 3x entry")
}

func TestManifestSharedMarketingFile(t *testing.T) {
	// the App Store entry and the macOS 512@2x entry share the single
	// 1024px render
	m := NewManifest(DefaultAuthor)
	var got []ManifestImage
	for _, img := range m.Images {
		if img.Filename == "icon_1024x1024.png" {
			got = append(got, img)
		}
	}
	want := []ManifestImage{
		{Size: "1024x1024", Idiom: "ios-marketing", Filename: "icon_1024x1024.png", Scale: "1x"},
		{Size: "512x512", Idiom: "mac", Filename: "icon_1024x1024.png", Scale: "2x"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}
