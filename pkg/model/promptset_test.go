package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/vass-cornelius/kensho/pkg/model"
)

func TestPromptSetFor(t *testing.T) {
	t.Run("daily", func(t *testing.T) {
		ps, err := model.PromptSetFor(model.KindDaily)
		gt.NoError(t, err)
		gt.V(t, ps.Kind).Equal(model.KindDaily)
		gt.V(t, len(ps.Prompts)).Equal(5)

		gt.V(t, ps.Prompts[0].Label).Equal("What I did")
		gt.V(t, ps.Prompts[1].Label).Equal("What's next")
		gt.V(t, ps.Prompts[2].Label).Equal("What broke or got weird")
		gt.V(t, ps.Prompts[3].Label).Equal("Productivity Score")
		gt.V(t, ps.Prompts[4].Label).Equal("Quick Insights")

		gt.V(t, ps.Prompts[3].Mode).Equal(model.PromptModeLine)
		gt.V(t, ps.Prompts[0].Mode).Equal(model.PromptModeList)
	})

	t.Run("start of week", func(t *testing.T) {
		ps, err := model.PromptSetFor(model.KindStartOfWeek)
		gt.NoError(t, err)
		gt.V(t, len(ps.Prompts)).Equal(3)

		gt.V(t, ps.Prompts[0].Label).Equal("My Goals for the Week")
		gt.V(t, ps.Prompts[1].Label).Equal("Next Steps")
		gt.V(t, ps.Prompts[2].Label).Equal("Other Tasks")
	})

	t.Run("end of week", func(t *testing.T) {
		ps, err := model.PromptSetFor(model.KindEndOfWeek)
		gt.NoError(t, err)
		gt.V(t, len(ps.Prompts)).Equal(4)

		gt.V(t, ps.Prompts[0].Label).Equal("What went well?")
		gt.V(t, ps.Prompts[1].Label).Equal("What are you happy about?")
		gt.V(t, ps.Prompts[2].Label).Equal("What made you laugh?")
		gt.V(t, ps.Prompts[3].Label).Equal("Please describe any progress that you have observed.")

		for _, p := range ps.Prompts {
			gt.V(t, p.Mode).Equal(model.PromptModeText)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := model.PromptSetFor(model.EntryKind("weekly"))
		gt.Error(t, err)
	})

	t.Run("every prompt has a question", func(t *testing.T) {
		for _, kind := range []model.EntryKind{model.KindDaily, model.KindStartOfWeek, model.KindEndOfWeek} {
			ps, err := model.PromptSetFor(kind)
			gt.NoError(t, err)
			for _, p := range ps.Prompts {
				gt.S(t, p.Question).NotContains("\n")
				gt.True(t, p.Question != "")
				gt.True(t, p.Label != "")
			}
		}
	})
}
