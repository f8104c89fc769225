// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/codereview"

// Compile-time interface verification.
var _ codereview.Theme = (*Theme)(nil)

// Theme implements codereview.Theme with Lipgloss-compatible colors.
type Theme struct {
	mode    codereview.ThemeMode
	styles  codereview.Styles
	palette codereview.Palette
}

// Mode reports whether this is the light or dark theme.
func (t *Theme) Mode() codereview.ThemeMode {
	return t.mode
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() codereview.Styles {
	return t.styles
}

// Palette returns the syntax color palette for this theme.
func (t *Theme) Palette() codereview.Palette {
	return t.palette
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		mode: codereview.ThemeDark,
		styles: codereview.Styles{
			Title: codereview.ColorPair{
				Foreground: "#cdd6f4", // Text
			},
			Subtitle: codereview.ColorPair{
				Foreground: "#a6adc8", // Subtext
			},
			CardBorder: codereview.ColorPair{
				Foreground: "#45475a", // Muted gray (subtle)
			},
			CardTitle: codereview.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			Body: codereview.ColorPair{
				Foreground: "#cdd6f4",
			},
			Muted: codereview.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			Diagnostic: codereview.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
			Error: codereview.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#f38ba8", // Red
			},
			Prompt: codereview.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#f9e2af",
			},
			Code: codereview.ColorPair{
				Foreground: "#cdd6f4",
				Background: "#181825", // Mantle
			},
			LineNumber: codereview.ColorPair{
				Foreground: "#6c7086",
			},
			StatusBar: codereview.ColorPair{
				Foreground: "#a6adc8",
				Background: "#313244",
			},
			Accent: codereview.ColorPair{
				Foreground: "#89b4fa",
			},
		},
		palette: codereview.Palette{
			// Base colors (Catppuccin Mocha)
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",

			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Operator:    "#89dceb",
			Function:    "#89b4fa",
			Type:        "#f9e2af",
			Constant:    "#fab387",
			Punctuation: "#9399b2",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		mode: codereview.ThemeLight,
		styles: codereview.Styles{
			Title: codereview.ColorPair{
				Foreground: "#4c4f69", // Text
			},
			Subtitle: codereview.ColorPair{
				Foreground: "#6c6f85", // Subtext
			},
			CardBorder: codereview.ColorPair{
				Foreground: "#bcc0cc", // Muted gray (subtle for light)
			},
			CardTitle: codereview.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
			Body: codereview.ColorPair{
				Foreground: "#4c4f69",
			},
			Muted: codereview.ColorPair{
				Foreground: "#9ca0b0",
			},
			Diagnostic: codereview.ColorPair{
				Foreground: "#df8e1d", // Yellow
				Background: "#e6e9ef", // Light surface
			},
			Error: codereview.ColorPair{
				Foreground: "#ffffff", // White text on dark background
				Background: "#d20f39", // Red
			},
			Prompt: codereview.ColorPair{
				Foreground: "#ffffff",
				Background: "#df8e1d",
			},
			Code: codereview.ColorPair{
				Foreground: "#4c4f69",
				Background: "#e6e9ef",
			},
			LineNumber: codereview.ColorPair{
				Foreground: "#9ca0b0",
			},
			StatusBar: codereview.ColorPair{
				Foreground: "#6c6f85",
				Background: "#dce0e8", // Crust
			},
			Accent: codereview.ColorPair{
				Foreground: "#1e66f5",
			},
		},
		palette: codereview.Palette{
			// Base colors (Catppuccin Latte)
			Background: "#eff1f5",
			Foreground: "#4c4f69",

			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Operator:    "#04a5e5",
			Function:    "#1e66f5",
			Type:        "#df8e1d",
			Constant:    "#fe640b",
			Punctuation: "#6c6f85",
		},
	}
}
