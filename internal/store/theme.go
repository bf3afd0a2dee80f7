package store

import (
	"strings"

	"github.com/pathakanu/studyPlanner/internal/persistence"
)

// Theme is the user's colour scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme resolves a theme name; empty means light.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight, "":
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", invalid("theme", "must be light or dark")
	}
}

// Theme returns the current theme preference.
func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme stores the theme preference.
func (s *Store) SetTheme(name string) (Theme, error) {
	t, err := ParseTheme(name)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
	return t, s.saveAll(persistence.KeyTheme)
}

// ToggleTheme switches between light and dark.
func (s *Store) ToggleTheme() (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	return s.theme, s.saveAll(persistence.KeyTheme)
}
