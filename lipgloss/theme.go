// Package lipgloss renders reports for the terminal using the Lipgloss
// styling library.
package lipgloss

// Theme holds the colors used when rendering a report.
type Theme struct {
	Added      string
	Removed    string
	Context    string
	HunkHeader string
	FileHeader string
	Heading    string
	Border     string
	Muted      string
	Accent     string
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds,
// based on the Catppuccin Mocha palette.
func DarkTheme() *Theme {
	return &Theme{
		Added:      "#a6e3a1", // Green
		Removed:    "#f38ba8", // Red
		Context:    "#6c7086", // Muted gray
		HunkHeader: "#89b4fa", // Blue
		FileHeader: "#f9e2af", // Yellow
		Heading:    "#cba6f7", // Mauve
		Border:     "#45475a", // Surface
		Muted:      "#6c7086",
		Accent:     "#89b4fa",
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds,
// based on the Catppuccin Latte palette.
func LightTheme() *Theme {
	return &Theme{
		Added:      "#40a02b",
		Removed:    "#d20f39",
		Context:    "#9ca0b0",
		HunkHeader: "#1e66f5",
		FileHeader: "#df8e1d",
		Heading:    "#8839ef",
		Border:     "#bcc0cc",
		Muted:      "#9ca0b0",
		Accent:     "#1e66f5",
	}
}
