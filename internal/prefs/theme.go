package prefs

import (
	"fmt"
	"strconv"

	"github.com/diogo/chatdb/internal/models"
)

// Theme is the persisted dark-mode flag
type Theme struct {
	store Store
	dark  bool
}

// LoadTheme reads the flag from store. Anything other than "true",
// including a missing key, means light mode.
func LoadTheme(store Store) (*Theme, error) {
	t := &Theme{store: store}

	value, ok, err := store.Get(models.DarkModeKey)
	if err != nil {
		return t, fmt.Errorf("failed to load theme preference: %w", err)
	}
	t.dark = ok && value == "true"

	return t, nil
}

// Dark reports whether dark mode is on
func (t *Theme) Dark() bool {
	return t.dark
}

// Name returns "dark" or "light"
func (t *Theme) Name() string {
	if t.dark {
		return "dark"
	}
	return "light"
}

// Toggle flips the flag and persists it. On a write failure the in-memory
// value is left unchanged so it keeps matching what is stored.
func (t *Theme) Toggle() (bool, error) {
	next := !t.dark
	if err := t.store.Set(models.DarkModeKey, strconv.FormatBool(next)); err != nil {
		return t.dark, fmt.Errorf("failed to save theme preference: %w", err)
	}
	t.dark = next
	return t.dark, nil
}
