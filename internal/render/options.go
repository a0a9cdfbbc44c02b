// Package render formats chat replies and one-shot output for the terminal.
package render

// Glamour standard styles used for the two chat themes
const (
	StyleDark  = "dark"
	StyleLight = "light"
)

// Options configures the markdown renderer behavior.
type Options struct {
	// Width is the word-wrap column
	Width int

	// Style is a glamour standard style name or a path to a JSON style
	Style string

	EnableEmoji      bool
	PreserveNewLines bool
	TableWrap        bool
	InlineTableLinks bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Width:            80,
		Style:            StyleLight,
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
		InlineTableLinks: false,
	}
}

// StyleForTheme maps the dark-mode flag to a glamour style
func StyleForTheme(dark bool) string {
	if dark {
		return StyleDark
	}
	return StyleLight
}

// WithWidth returns Options with the specified width.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// WithStyle returns Options with the specified style.
func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}

// WithDark selects the style matching the dark-mode flag
func (o Options) WithDark(dark bool) Options {
	return o.WithStyle(StyleForTheme(dark))
}

func (o Options) WithEmoji(enabled bool) Options {
	o.EnableEmoji = enabled
	return o
}

func (o Options) WithPreserveNewLines(enabled bool) Options {
	o.PreserveNewLines = enabled
	return o
}

func (o Options) WithTableWrap(enabled bool) Options {
	o.TableWrap = enabled
	return o
}

func (o Options) WithInlineTableLinks(enabled bool) Options {
	o.InlineTableLinks = enabled
	return o
}
