package model

// Goal is a weekly intention. Its color is assigned at creation and reused
// for any tasks spawned from it.
type Goal struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Color     string `json:"color,omitempty"`
}

// Palette holds the display colors cycled through as goals are created.
// Names are valid tview color tags.
var Palette = []string{"teal", "orange", "purple", "green", "red", "blue", "yellow", "fuchsia"}

// NextColor returns the palette entry for the n-th created item.
func NextColor(n int) string {
	if n < 0 {
		n = -n
	}
	return Palette[n%len(Palette)]
}

// FallbackColor is used for timer tasks whose goal carries no color.
func FallbackColor() string { return Palette[0] }
