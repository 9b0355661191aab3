package models

import "fmt"

// Theme represents the display theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// FontSize represents the display font-size preference.
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// Settings holds the display preferences.
type Settings struct {
	Theme    Theme    `bson:"theme" json:"theme"`
	FontSize FontSize `bson:"font_size" json:"fontSize"`
}

// DefaultSettings returns the preferences used before the user picks any.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeSystem, FontSize: FontMedium}
}

// IsValidTheme checks if a theme value is one of the known themes.
func IsValidTheme(t Theme) bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	default:
		return false
	}
}

// IsValidFontSize checks if a font-size value is one of the known sizes.
func IsValidFontSize(f FontSize) bool {
	switch f {
	case FontSmall, FontMedium, FontLarge:
		return true
	default:
		return false
	}
}

// Validate checks both preference fields.
func (s Settings) Validate() error {
	if !IsValidTheme(s.Theme) {
		return fmt.Errorf("invalid theme %q", s.Theme)
	}
	if !IsValidFontSize(s.FontSize) {
		return fmt.Errorf("invalid font size %q", s.FontSize)
	}
	return nil
}
