package theme

import (
	"os"
	"strings"
)

// SchemeEnv overrides OS scheme detection ("dark" or "light").
const SchemeEnv = "PHOTOBOARD_COLOR_SCHEME"

// DetectSystemDark reports whether the desktop prefers a dark scheme.
// It checks, in order:
// 1. PHOTOBOARD_COLOR_SCHEME
// 2. GTK_THEME (contains "dark")
// and defaults to light when neither is set.
func DetectSystemDark() bool {
	if v := os.Getenv(SchemeEnv); v != "" {
		if dark, ok := parseScheme(v); ok {
			return dark
		}
	}
	if gtkTheme := os.Getenv("GTK_THEME"); gtkTheme != "" {
		return strings.Contains(strings.ToLower(gtkTheme), "dark")
	}
	return false
}

// ResolveColorScheme turns a configured scheme ("prefer-dark", "prefer-light",
// "default") into the OS signal the controller follows. "default" or an
// unknown value falls through to DetectSystemDark.
func ResolveColorScheme(configScheme string) bool {
	if dark, ok := parseScheme(configScheme); ok {
		return dark
	}
	return DetectSystemDark()
}

func parseScheme(s string) (dark, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prefer-dark", "dark":
		return true, true
	case "prefer-light", "light":
		return false, true
	}
	return false, false
}
