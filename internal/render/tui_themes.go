package render

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// TUITheme defines the color scheme for the chat view
type TUITheme struct {
	Name string

	// Page and chrome
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Input      lipgloss.Color

	Primary lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color

	// Message bubbles
	UserBubble      lipgloss.Color
	UserText        lipgloss.Color
	AssistantBubble lipgloss.Color
	AssistantBorder lipgloss.Color
	SystemBubble    lipgloss.Color
	SystemText      lipgloss.Color
	SystemBorder    lipgloss.Color
}

var (
	// LightTheme is the default palette
	LightTheme = TUITheme{
		Name: StyleLight,

		Background: lipgloss.Color("#f3f4f6"),
		Surface:    lipgloss.Color("#ffffff"),
		Border:     lipgloss.Color("#e5e7eb"),
		Input:      lipgloss.Color("#ffffff"),

		Primary: lipgloss.Color("#2563eb"),
		Warning: lipgloss.Color("#ca8a04"),
		Error:   lipgloss.Color("#dc2626"),

		Text:     lipgloss.Color("#000000"),
		TextDim:  lipgloss.Color("#6b7280"),
		TextMute: lipgloss.Color("#9ca3af"),

		UserBubble:      lipgloss.Color("#dbeafe"),
		UserText:        lipgloss.Color("#000000"),
		AssistantBubble: lipgloss.Color("#ffffff"),
		AssistantBorder: lipgloss.Color("#e5e7eb"),
		SystemBubble:    lipgloss.Color("#fefce8"),
		SystemText:      lipgloss.Color("#374151"),
		SystemBorder:    lipgloss.Color("#fde047"),
	}

	DarkTheme = TUITheme{
		Name: StyleDark,

		Background: lipgloss.Color("#111827"),
		Surface:    lipgloss.Color("#1f2937"),
		Border:     lipgloss.Color("#374151"),
		Input:      lipgloss.Color("#374151"),

		Primary: lipgloss.Color("#2563eb"),
		Warning: lipgloss.Color("#eab308"),
		Error:   lipgloss.Color("#f87171"),

		Text:     lipgloss.Color("#ffffff"),
		TextDim:  lipgloss.Color("#9ca3af"),
		TextMute: lipgloss.Color("#6b7280"),

		UserBubble:      lipgloss.Color("#2563eb"),
		UserText:        lipgloss.Color("#ffffff"),
		AssistantBubble: lipgloss.Color("#1f2937"),
		AssistantBorder: lipgloss.Color("#374151"),
		SystemBubble:    lipgloss.Color("#eab308"),
		SystemText:      lipgloss.Color("#e5e7eb"),
		SystemBorder:    lipgloss.Color("#fde047"),
	}
)

var (
	themeMu         sync.RWMutex
	currentTUITheme = LightTheme
)

// GetTUITheme returns the currently active TUI theme
func GetTUITheme() TUITheme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTUITheme
}

// SetTUITheme sets the active TUI theme by name
func SetTUITheme(name string) bool {
	theme, ok := GetTUIThemeByName(name)
	if !ok {
		return false
	}
	themeMu.Lock()
	currentTUITheme = theme
	themeMu.Unlock()
	return true
}

// SetDark activates the palette for the dark-mode flag
func SetDark(dark bool) {
	SetTUITheme(StyleForTheme(dark))
}

// GetTUIThemeByName returns a TUI theme by its name
func GetTUIThemeByName(name string) (TUITheme, bool) {
	switch name {
	case StyleLight:
		return LightTheme, true
	case StyleDark:
		return DarkTheme, true
	default:
		return TUITheme{}, false
	}
}

// AvailableTUIThemes returns every built-in palette
func AvailableTUIThemes() []TUITheme {
	return []TUITheme{LightTheme, DarkTheme}
}
