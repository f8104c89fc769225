package codereview

import (
	"context"
	"fmt"
)

// ThemeMode selects the light or dark color scheme.
type ThemeMode int

// Theme modes.
const (
	ThemeLight ThemeMode = iota
	ThemeDark
)

// ThemeKey is the key under which the theme flag is persisted.
const ThemeKey = "theme"

// String returns "light" or "dark".
func (m ThemeMode) String() string {
	if m == ThemeDark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other mode.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseThemeMode parses "light" or "dark".
func ParseThemeMode(s string) (ThemeMode, error) {
	switch s {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return ThemeLight, fmt.Errorf("invalid theme %q: want light or dark", s)
	}
}

// ThemeController owns the process-wide theme flag. The flag is read once
// when the controller is created and written on every change.
type ThemeController struct {
	store ThemeStore
	mode  ThemeMode
}

// NewThemeController loads the persisted mode from store. A nil store keeps
// the mode in memory only, starting light.
func NewThemeController(ctx context.Context, store ThemeStore) (*ThemeController, error) {
	c := &ThemeController{store: store}
	if store == nil {
		return c, nil
	}
	mode, err := store.LoadTheme(ctx)
	if err != nil {
		return c, fmt.Errorf("load theme: %w", err)
	}
	c.mode = mode
	return c, nil
}

// Mode returns the current mode.
func (c *ThemeController) Mode() ThemeMode {
	return c.mode
}

// Toggle flips the mode and persists it. The in-memory mode changes even
// when persisting fails.
func (c *ThemeController) Toggle(ctx context.Context) (ThemeMode, error) {
	next := c.mode.Toggle()
	err := c.Set(ctx, next)
	return next, err
}

// Set changes the mode and persists it.
func (c *ThemeController) Set(ctx context.Context, mode ThemeMode) error {
	c.mode = mode
	if c.store == nil {
		return nil
	}
	if err := c.store.SaveTheme(ctx, mode); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
