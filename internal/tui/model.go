package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/chatdb/internal/api"
	"github.com/diogo/chatdb/internal/chat"
	"github.com/diogo/chatdb/internal/logger"
	"github.com/diogo/chatdb/internal/models"
	"github.com/diogo/chatdb/internal/prefs"
	"github.com/diogo/chatdb/internal/render"
)

// replyMsg carries the assistant turn for one submission
type replyMsg struct {
	message models.Message
}

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

// Model represents the chat view state
type Model struct {
	gateway  api.Gateway
	theme    *prefs.Theme
	endpoint string
	opts     render.Options
	keys     keyMap

	ctx    context.Context
	cancel context.CancelFunc

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	store    chat.Store
	inFlight int
	ready    bool
	notice   string

	// Dimensions
	width  int
	height int
}

// NewChatModel creates the chat view. The theme decides the starting
// palette; opts carries the markdown settings.
func NewChatModel(gw api.Gateway, theme *prefs.Theme, opts render.Options, endpoint string) Model {
	render.SetDark(theme.Dark())
	UpdateTheme()

	keys := defaultKeyMap()

	ta := textarea.New()
	ta.Placeholder = models.InputPlaceholder
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.KeyMap = textareaKeyMap(keys)
	ta.Focus()
	styleTextarea(&ta)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = pendingStyle

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		gateway:  gw,
		theme:    theme,
		endpoint: endpoint,
		opts:     opts.WithDark(theme.Dark()),
		keys:     keys,
		ctx:      ctx,
		cancel:   cancel,
		textarea: ta,
		spinner:  s,
		store:    chat.NewSession(),
	}
}

func styleTextarea(ta *textarea.Model) {
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText).Background(colorInput)
	ta.FocusedStyle.Text = lipgloss.NewStyle().Foreground(colorText).Background(colorInput)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim).Background(colorInput)
	ta.BlurredStyle = ta.FocusedStyle
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Pending reports whether any submission is awaiting its reply
func (m Model) Pending() bool {
	return m.inFlight > 0
}

// Messages returns the conversation so far
func (m Model) Messages() []models.Message {
	return m.store.Messages()
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Header panel with border
		inputHeight := 6  // Input panel with border
		statusHeight := 1
		padding := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			// Letter keys belong to the textarea
			m.viewport.KeyMap = viewport.KeyMap{
				PageUp:   m.keys.ScrollUp,
				PageDown: m.keys.ScrollDn,
			}
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
		}
		m.textarea.SetWidth(contentWidth - 4)
		m.updateViewport()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancel()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			return m.submit()

		case key.Matches(msg, m.keys.Theme):
			m.toggleTheme()
			return m, nil

		case key.Matches(msg, m.keys.CopySQL):
			m.copyLastSQL()
			return m, nil
		}

	case replyMsg:
		m.inFlight--
		m.store = m.store.Append(msg.message)
		logger.Debug("reply appended error=%t pending=%d", msg.message.IsError(), m.inFlight)
		m.updateViewport()
		m.viewport.GotoBottom()

	case spinner.TickMsg:
		if m.Pending() {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
			m.updateViewport()
		}
	}

	// Only pass KeyMsg to textarea to prevent escape sequence leaks
	if _, ok := msg.(tea.KeyMsg); ok {
		m.notice = ""
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit appends the user turn and starts the request. Blank input is
// ignored and left in the textarea.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := m.textarea.Value()
	if !chat.ShouldSubmit(text) {
		return m, nil
	}

	m.store = m.store.Append(chat.UserMessage(text))
	m.textarea.Reset()
	m.notice = ""
	m.inFlight++
	logger.Debug("submitting question pending=%d", m.inFlight)

	cmds := []tea.Cmd{m.sendMessage(text)}
	if m.inFlight == 1 {
		cmds = append(cmds, m.spinner.Tick)
	}

	m.updateViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(cmds...)
}

// sendMessage runs the gateway call off the event loop
func (m Model) sendMessage(text string) tea.Cmd {
	gw, ctx := m.gateway, m.ctx
	return func() tea.Msg {
		return replyMsg{message: chat.Send(ctx, gw, text)}
	}
}

func (m *Model) toggleTheme() {
	dark, err := m.theme.Toggle()
	if err != nil {
		logger.Warn("theme toggle failed: %v", err)
		m.notice = err.Error()
		return
	}

	render.SetDark(dark)
	UpdateTheme()
	styleTextarea(&m.textarea)
	m.spinner.Style = pendingStyle
	m.opts = m.opts.WithDark(dark)
	m.updateViewport()
}

func (m *Model) copyLastSQL() {
	sql := m.lastSQL()
	if sql == "" {
		m.notice = "No SQL to copy yet"
		return
	}
	if err := writeClipboard(sql); err != nil {
		logger.Warn("clipboard write failed: %v", err)
		m.notice = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.notice = "Copied SQL to clipboard"
}

// lastSQL returns the query of the most recent successful reply
func (m Model) lastSQL() string {
	msgs := m.store.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].SQL != "" {
			return msgs[i].SQL
		}
	}
	return ""
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return pendingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4

	sections = append(sections, m.renderHeader(contentWidth))

	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(m.viewport.View())
	sections = append(sections, messagesPanel)

	inputContent := lipgloss.JoinVertical(
		lipgloss.Left,
		inputLabelStyle.Render("You"),
		m.textarea.View(),
	)
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	sections = append(sections, m.renderStatusBar(contentWidth))

	if m.notice != "" {
		sections = append(sections, noticeStyle.Render("  "+m.notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// themeIcon is the indicator shown for the active mode
func themeIcon(dark bool) string {
	if dark {
		return "🌙"
	}
	return "🌞"
}

func (m Model) renderHeader(width int) string {
	title := titleStyle.Render(models.AppTitle)
	if m.endpoint != "" {
		title = lipgloss.JoinHorizontal(lipgloss.Center,
			title,
			subtitleStyle.Render("  •  "+m.endpoint),
		)
	}

	icon := subtitleStyle.Render(themeIcon(m.theme.Dark()))

	// Title left, theme indicator right
	inner := width - 6
	gap := inner - lipgloss.Width(title) - lipgloss.Width(icon)
	if gap < 1 {
		gap = 1
	}
	line := title + subtitleStyle.Render(strings.Repeat(" ", gap)) + icon

	return headerStyle.Width(width).Render(line)
}

// questionCount labels how many questions were asked this session
func questionCount(n int) string {
	if n == 1 {
		return "1 question"
	}
	return fmt.Sprintf("%d questions", n)
}

// renderStatusBar renders the bottom status bar with the question count
// and shortcuts
func (m Model) renderStatusBar(width int) string {
	items := []string{statusDescStyle.Render(questionCount(m.store.Count(models.RoleUser)))}
	for _, b := range m.keys.shortcuts() {
		h := b.Help()
		items = append(items, lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(h.Key),
			statusDescStyle.Render(" "+h.Desc),
		))
	}

	bar := strings.Join(items, "  │  ")
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content with styled messages
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}

	var content strings.Builder
	bubbleWidth := m.viewport.Width - 10
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	for i, msg := range m.store.Messages() {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(m.renderMessage(msg, bubbleWidth))
		content.WriteString("\n")
	}

	if m.Pending() {
		content.WriteString("\n")
		content.WriteString(m.spinner.View() + " " + pendingStyle.Render(models.PendingText))
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

func (m Model) renderMessage(msg models.Message, width int) string {
	switch msg.Role {
	case models.RoleUser:
		label := userLabelStyle.Render("You")
		return label + "\n" + userBubbleStyle.Width(width).Render(msg.Content)

	case models.RoleSystem:
		bubble := systemBubbleStyle.Render(msg.Content)
		return lipgloss.PlaceHorizontal(m.viewport.Width-2, lipgloss.Center, bubble)

	default:
		label := assistantLabelStyle.Render(models.AppTitle)
		var body string
		if msg.IsError() {
			body = errorStyle.Render(msg.Content)
		} else {
			body = render.Reply(msg.Content, msg.Markdown, m.opts.WithWidth(width-4))
		}
		return label + "\n" + assistantBubbleStyle.Width(width).Render(body)
	}
}

// RunChat starts the chat TUI
func RunChat(gw api.Gateway, theme *prefs.Theme, opts render.Options, endpoint string) error {
	m := NewChatModel(gw, theme, opts, endpoint)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	m.cancel()
	return err
}
