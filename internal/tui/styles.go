// Package tui provides the chat view for chatdb.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/chatdb/internal/render"
)

// Color variables (updated from theme)
var (
	colorSurface    lipgloss.Color
	colorBorder     lipgloss.Color
	colorInput      lipgloss.Color
	colorPrimary    lipgloss.Color
	colorWarning    lipgloss.Color
	colorError      lipgloss.Color
	colorText       lipgloss.Color
	colorTextDim    lipgloss.Color
	colorTextMute   lipgloss.Color
)

// Style variables (rebuilt when theme changes)
var (
	headerStyle   lipgloss.Style
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	hintStyle     lipgloss.Style

	messagesAreaStyle lipgloss.Style

	userBubbleStyle      lipgloss.Style
	userLabelStyle       lipgloss.Style
	assistantBubbleStyle lipgloss.Style
	assistantLabelStyle  lipgloss.Style
	systemBubbleStyle    lipgloss.Style

	inputPanelStyle lipgloss.Style
	inputLabelStyle lipgloss.Style

	pendingStyle lipgloss.Style
	noticeStyle  lipgloss.Style

	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style

	errorStyle lipgloss.Style
)

func init() {
	UpdateTheme()
}

// UpdateTheme refreshes all styles based on the current TUI theme
func UpdateTheme() {
	theme := render.GetTUITheme()

	colorSurface = theme.Surface
	colorBorder = theme.Border
	colorInput = theme.Input
	colorPrimary = theme.Primary
	colorWarning = theme.Warning
	colorError = theme.Error
	colorText = theme.Text
	colorTextDim = theme.TextDim
	colorTextMute = theme.TextMute

	rebuildStyles(theme)
}

func rebuildStyles(theme render.TUITheme) {
	headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Background(colorSurface).
		Padding(0, 2).
		MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorSurface).
		Bold(true)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Background(colorSurface)

	hintStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Italic(true)

	messagesAreaStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1)

	// User turns sit on the right, replies on the left
	userBubbleStyle = lipgloss.NewStyle().
		Background(theme.UserBubble).
		Foreground(theme.UserText).
		Padding(0, 1).
		MarginLeft(8)

	userLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginLeft(8)

	assistantBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.AssistantBorder).
		Foreground(colorText).
		Padding(0, 1).
		MarginRight(8)

	assistantLabelStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Bold(true)

	systemBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.SystemBorder).
		Background(theme.SystemBubble).
		Foreground(theme.SystemText).
		Padding(0, 1).
		Align(lipgloss.Center)

	inputPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		MarginTop(1)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginRight(1)

	pendingStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Italic(true)

	noticeStyle = lipgloss.NewStyle().
		Foreground(colorWarning)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		MarginTop(1)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	errorStyle = lipgloss.NewStyle().
		Foreground(colorError)
}
