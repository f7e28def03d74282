package prompt_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/vass-cornelius/kensho/pkg/model"
	"github.com/vass-cornelius/kensho/pkg/prompt"
)

// newTestSource opens a readline source over a scripted input stream.
func newTestSource(t *testing.T, input string) (*prompt.ReadlineSource, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	src, err := prompt.NewReadline(prompt.WithStreams(io.NopCloser(strings.NewReader(input)), out))
	gt.NoError(t, err)
	t.Cleanup(func() { src.Close() })

	return src, out
}

func TestAskLine(t *testing.T) {
	src, _ := newTestSource(t, "4\n")

	answer, err := src.Ask(context.Background(), model.Prompt{
		Label:    "Productivity Score",
		Question: "Productivity score (1-5)",
		Mode:     model.PromptModeLine,
	})
	gt.NoError(t, err)
	gt.V(t, answer).Equal("4")
}

func TestAskList(t *testing.T) {
	src, out := newTestSource(t, "shipped the exporter\nreviewed two PRs\n\n")

	answer, err := src.Ask(context.Background(), model.Prompt{
		Label:    "What I did",
		Question: "What I did (new entries)",
		Mode:     model.PromptModeList,
	})
	gt.NoError(t, err)
	gt.V(t, answer).Equal("- shipped the exporter\n- reviewed two PRs")
	gt.S(t, out.String()).Contains("What I did (new entries)")
	gt.S(t, out.String()).Contains("enter an empty line to finish")
}

func TestAskText(t *testing.T) {
	src, out := newTestSource(t, "the release went out\nnobody paged me\nEND\n")

	answer, err := src.Ask(context.Background(), model.Prompt{
		Label:    "What went well?",
		Question: "Based on your logs: What went well?",
		Mode:     model.PromptModeText,
	})
	gt.NoError(t, err)
	gt.V(t, answer).Equal("the release went out\nnobody paged me")
	gt.S(t, out.String()).Contains("type 'END' on its own line to finish")
}

func TestAskTextEndCaseInsensitive(t *testing.T) {
	src, _ := newTestSource(t, "observed progress\nend\nnever read\n")

	answer, err := src.Ask(context.Background(), model.Prompt{
		Label:    "Please describe any progress that you have observed.",
		Question: "Please describe any progress that you have observed.",
		Mode:     model.PromptModeText,
	})
	gt.NoError(t, err)
	gt.V(t, answer).Equal("observed progress")
}

func TestAskTextKeepsInteriorBlankLines(t *testing.T) {
	src, _ := newTestSource(t, "first paragraph\n\nsecond paragraph\nEND\n")

	answer, err := src.Ask(context.Background(), model.Prompt{
		Label:    "What are you happy about?",
		Question: "What are you happy about?",
		Mode:     model.PromptModeText,
	})
	gt.NoError(t, err)
	gt.V(t, answer).Equal("first paragraph\n\nsecond paragraph")
}

func TestAskLineEOF(t *testing.T) {
	src, _ := newTestSource(t, "")

	answer, err := src.Ask(context.Background(), model.Prompt{
		Label:    "Productivity Score",
		Question: "Productivity score (1-5)",
		Mode:     model.PromptModeLine,
	})
	gt.NoError(t, err)
	gt.V(t, answer).Equal("")
}

func TestAskListEOF(t *testing.T) {
	src, _ := newTestSource(t, "only one item\n")

	answer, err := src.Ask(context.Background(), model.Prompt{
		Label:    "Quick Insights",
		Question: "Quick insights (new entries)",
		Mode:     model.PromptModeList,
	})
	gt.NoError(t, err)
	gt.V(t, answer).Equal("- only one item")
}

func TestAskTextEOF(t *testing.T) {
	src, _ := newTestSource(t, "cut off mid\n")

	answer, err := src.Ask(context.Background(), model.Prompt{
		Label:    "What made you laugh?",
		Question: "What made you laugh?",
		Mode:     model.PromptModeText,
	})
	gt.NoError(t, err)
	gt.V(t, answer).Equal("cut off mid")
}

func TestAskSequence(t *testing.T) {
	src, _ := newTestSource(t, "4\nfixed the flaky test\n\n")
	ctx := context.Background()

	score, err := src.Ask(ctx, model.Prompt{
		Label:    "Productivity Score",
		Question: "Productivity score (1-5)",
		Mode:     model.PromptModeLine,
	})
	gt.NoError(t, err)
	gt.V(t, score).Equal("4")

	done, err := src.Ask(ctx, model.Prompt{
		Label:    "What I did",
		Question: "What I did (new entries)",
		Mode:     model.PromptModeList,
	})
	gt.NoError(t, err)
	gt.V(t, done).Equal("- fixed the flaky test")
}
