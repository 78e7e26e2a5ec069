package ui

import (
	"testing"

	"github.com/five82/flipclock/internal/prefs"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 || names[0] != prefs.ThemeDark || names[1] != prefs.ThemeLight {
		t.Fatalf("ThemeNames() = %v, want [dark light]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme(prefs.ThemeDark); got != prefs.ThemeLight {
		t.Fatalf("NextTheme(dark) = %q, want light", got)
	}
	if got := NextTheme(prefs.ThemeLight); got != prefs.ThemeDark {
		t.Fatalf("NextTheme(light) = %q, want dark", got)
	}
	if got := NextTheme("Unknown"); got != prefs.ThemeDark {
		t.Fatalf("NextTheme(Unknown) = %q, want dark", got)
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("light").Name; got != prefs.ThemeLight {
		t.Fatalf("GetTheme(light).Name = %q, want light", got)
	}
	if got := GetTheme("Dracula").Name; got != prefs.ThemeDark {
		t.Fatalf("GetTheme(Dracula).Name = %q, want dark (fallback)", got)
	}
	if got := GetTheme("").Name; got != prefs.ThemeDark {
		t.Fatalf("GetTheme(\"\").Name = %q, want dark", got)
	}
}

func TestThemeIcon(t *testing.T) {
	if got := GetTheme(prefs.ThemeLight).Icon(); got != "🌙" {
		t.Fatalf("light Icon() = %q, want 🌙", got)
	}
	if got := GetTheme(prefs.ThemeDark).Icon(); got != "☀️" {
		t.Fatalf("dark Icon() = %q, want ☀️", got)
	}
}
