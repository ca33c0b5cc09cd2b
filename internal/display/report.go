package display

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/indent"

	"github.com/pixil98/gonorth-export/internal/exporterr"
)

const bulletIndent = 2

// Report formats recorded export problems as a bulleted list wrapped to
// width. Continuation lines are indented under their bullet.
func Report(entries []exporterr.Entry, width int) string {
	if len(entries) == 0 {
		return ""
	}
	if width < 1 {
		width = DefaultWidth
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d problem(s) found:\n", len(entries))
	for _, e := range entries {
		text := Capitalize(e.Message)
		if e.Kind != 0 {
			text = fmt.Sprintf("%s [%s]", text, e.Kind)
		}
		lines := strings.Split(Wrap(text, width-bulletIndent), "\n")
		sb.WriteString("- ")
		sb.WriteString(lines[0])
		sb.WriteString("\n")
		if len(lines) > 1 {
			sb.WriteString(indent.String(strings.Join(lines[1:], "\n"), bulletIndent))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
