package render

import (
	"os"

	"github.com/diogo/chatdb/internal/config"
)

// LoadOptionsFromConfig builds render options from the user configuration
// and the dark-mode flag. GLAMOUR_STYLE overrides the theme style.
func LoadOptionsFromConfig(cfg config.Config, dark bool) Options {
	md := cfg.Markdown
	opts := DefaultOptions().
		WithDark(dark).
		WithEmoji(md.EnableEmoji).
		WithPreserveNewLines(md.PreserveNewLines).
		WithTableWrap(md.TableWrap).
		WithInlineTableLinks(md.InlineTableLinks)

	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		opts = opts.WithStyle(style)
	}

	return opts
}

// LoadOptionsFromConfigWithWidth is LoadOptionsFromConfig at a specific width.
func LoadOptionsFromConfigWithWidth(cfg config.Config, dark bool, width int) Options {
	return LoadOptionsFromConfig(cfg, dark).WithWidth(width)
}
