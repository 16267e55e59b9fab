package appicon

// SizeEntry is a (logical point size, scale factor) pair from the
// platform icon size tables.
type SizeEntry struct {
	Base  float64
	Scale int
}

// PixelSize returns the physical pixel size, truncated to an integer.
func (e SizeEntry) PixelSize() int {
	return int(e.Base * float64(e.Scale))
}

// iconSizes is the fixed ordered table of required iOS and macOS icon
// resolutions. Multiple entries may resolve to the same pixel size;
// dedup is by pixel size, first seen wins.
var iconSizes = []SizeEntry{
	// iOS
	{20, 1}, {20, 2}, {20, 3},
	{29, 1}, {29, 2}, {29, 3},
	{40, 1}, {40, 2}, {40, 3},
	{60, 2}, {60, 3},
	{76, 1}, {76, 2},
	{83.5, 2},
	{1024, 1},
	// macOS
	{16, 1}, {16, 2},
	{32, 1}, {32, 2},
	{128, 1}, {128, 2},
	{256, 1}, {256, 2},
	{512, 1}, {512, 2},
}

// Sizes returns a copy of the fixed size table.
func Sizes() []SizeEntry {
	entries := make([]SizeEntry, len(iconSizes))
	copy(entries, iconSizes)
	return entries
}

// UniquePixelSizes returns the pixel sizes the table produces, deduped
// in first-seen order.
func UniquePixelSizes() []int {
	seen := make(map[int]bool, len(iconSizes))
	var sizes []int
	for _, e := range iconSizes {
		px := e.PixelSize()
		if seen[px] {
			continue
		}
		seen[px] = true
		sizes = append(sizes, px)
	}
	return sizes
}
