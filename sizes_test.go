package appicon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPixelSize(t *testing.T) {
	tests := []struct {
		name  string
		entry SizeEntry
		want  int
	}{
		{"20 at 1x", SizeEntry{20, 1}, 20},
		{"iPhone app 60 at 3x", SizeEntry{60, 3}, 180},
		{"iPad Pro 83.5 at 2x", SizeEntry{83.5, 2}, 167},
		{"macOS 512 at 2x", SizeEntry{512, 2}, 1024},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.PixelSize(); got != tt.want {
				t.Errorf("PixelSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUniquePixelSizes(t *testing.T) {
	want := []int{20, 40, 60, 29, 58, 87, 80, 120, 180, 76, 152, 167, 1024, 16, 32, 64, 128, 256, 512}
	got := UniquePixelSizes()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestUniquePixelSizesDedup(t *testing.T) {
	// 1024@1x and 512@2x resolve to the same pixel size
	count := 0
	for _, size := range UniquePixelSizes() {
		if size == 1024 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("pixel size 1024 appears %d times, want 1", count)
	}
}
