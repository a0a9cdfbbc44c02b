package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/diogo/chatdb/internal/api"
	apierrors "github.com/diogo/chatdb/internal/errors"
	"github.com/diogo/chatdb/internal/models"
)

// ShouldSubmit reports whether text is worth sending
func ShouldSubmit(text string) bool {
	return strings.TrimSpace(text) != ""
}

// UserMessage builds the user turn for text, kept verbatim
func UserMessage(text string) models.Message {
	return models.Message{Role: models.RoleUser, Content: text}
}

// Send submits text and converts the outcome into exactly one assistant
// message. Failures never escape as errors.
func Send(ctx context.Context, gw api.Gateway, text string) models.Message {
	result, err := gw.Submit(ctx, text)
	if err != nil {
		return FormatFailure(err)
	}
	return FormatReply(result)
}

// FormatReply renders a successful gateway response.
//
//	SQL:
//	`<sql>`
//
//	Result:
//	<result as indented JSON>
//
// The result section is replaced by the status message, or a generic
// success line, when the response carried no result. The SQL header is
// always present in the plain text; the markdown form omits a blank query.
func FormatReply(result *models.QueryResult) models.Message {
	var plain, md strings.Builder

	if result == nil {
		result = &models.QueryResult{}
	}

	plain.WriteString("SQL:\n`" + result.SQL + "`\n\n")
	if result.SQL != "" {
		md.WriteString("**SQL**\n\n```sql\n" + result.SQL + "\n```\n\n")
	}

	if result.HasResult() {
		pretty := indentJSON(result.Result)
		plain.WriteString("Result:\n" + pretty)
		md.WriteString("**Result**\n\n```json\n" + pretty + "\n```")
	} else {
		plain.WriteString(result.Status())
		md.WriteString(result.Status())
	}

	return models.Message{
		Role:     models.RoleAssistant,
		Content:  plain.String(),
		Markdown: md.String(),
		SQL:      result.SQL,
	}
}

// FormatFailure renders a gateway failure as an assistant message
func FormatFailure(err error) models.Message {
	return models.Message{
		Role:    models.RoleAssistant,
		Content: models.ErrorPrefix + apierrors.UserMessage(err),
	}
}

// indentJSON re-indents raw JSON with two spaces; invalid input is
// returned unchanged
func indentJSON(raw string) string {
	var compact bytes.Buffer
	if err := json.Compact(&compact, []byte(raw)); err != nil {
		return raw
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return raw
	}
	return out.String()
}
