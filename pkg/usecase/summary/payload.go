package summary

import (
	"fmt"
	"strings"

	"github.com/vass-cornelius/kensho/pkg/model"
)

// emptyPayloadText marks a period with no entries. It never reaches the
// model; Monthly skips the generation call for empty payloads.
const emptyPayloadText = "No journal entries found. Nothing to summarize."

// Payload is the aggregated input for one summarization run. Building it is
// deterministic: the same entries always yield byte-identical Text.
type Payload struct {
	Text    string
	Entries int
}

// Empty reports whether the period had nothing to summarize.
func (p Payload) Empty() bool {
	return p.Entries == 0
}

// BuildPayload renders entries into the log block handed to the model.
// Duplicate (date, kind) revisions are collapsed to the most recent one
// first, so superseded answers never leak into a summary. Sections appear in
// date order, week planning before dailies before the week review within a
// date. Unanswered slots render as N/A.
func BuildPayload(entries []*model.Entry) Payload {
	collapsed := model.Collapse(entries)
	if len(collapsed) == 0 {
		return Payload{Text: emptyPayloadText}
	}

	var b strings.Builder
	for i, e := range collapsed {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "--- %s (%s) ---\n", e.Date, e.Kind)
		for _, a := range e.Answers {
			fmt.Fprintf(&b, "## %s\n", a.Label)
			if strings.TrimSpace(a.Text) == "" {
				b.WriteString("N/A\n")
			} else {
				b.WriteString(a.Text + "\n")
			}
		}
	}

	return Payload{Text: b.String(), Entries: len(collapsed)}
}
