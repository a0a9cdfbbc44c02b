package render

import "strings"

// Markdown renders markdown content for terminal display using a pooled
// renderer.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := shared.acquire(opts)
	if err != nil {
		return "", err
	}
	defer shared.release(opts, renderer)

	return renderer.Render(content)
}

// Reply renders a chat message body. Messages without a markdown form are
// returned as plain text, and a render failure falls back to plain as well.
func Reply(plain, markdown string, opts Options) string {
	if markdown == "" {
		return plain
	}
	out, err := Markdown(markdown, opts)
	if err != nil {
		return plain
	}
	return strings.TrimRight(out, "\n")
}
