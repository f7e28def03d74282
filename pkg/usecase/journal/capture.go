package journal

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/m-mizutani/goerr/v2"

	"github.com/vass-cornelius/kensho/pkg/model"
	"github.com/vass-cornelius/kensho/pkg/utils/logging"
)

// Capture asks the fixed prompt set of kind in order, records the answers
// as a new entry for date, and appends it to the store. Answers are stored
// as given; an empty answer is kept as an empty slot. Recording the same
// (date, kind) again appends a new revision rather than overwriting.
func (uc *UseCase) Capture(ctx context.Context, kind model.EntryKind, date civil.Date) (*model.Entry, error) {
	ps, err := model.PromptSetFor(kind)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(uc.output, "\n--- %s ---\n", ps.Title)
	if kind != model.KindDaily {
		start, end, isoYear, isoWeek := model.WeekOf(date)
		fmt.Fprintf(uc.output, "Week %02d of %d (%s - %s)\n", isoWeek, isoYear, start, end)
	}

	answers := make([]model.Answer, 0, len(ps.Prompts))
	for _, p := range ps.Prompts {
		text, err := uc.source.Ask(ctx, p)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read answer", goerr.V("label", p.Label))
		}
		answers = append(answers, model.Answer{Label: p.Label, Text: text})
	}

	entry := &model.Entry{
		ID:        model.NewEntryID(),
		Date:      date,
		Kind:      kind,
		Answers:   answers,
		WrittenAt: uc.now(),
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := uc.repo.PutEntry(ctx, entry); err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("entry recorded",
		"id", entry.ID,
		"date", entry.Date.String(),
		"kind", entry.Kind,
	)
	fmt.Fprintf(uc.output, "\n✅ Saved %s entry for %s\n", kind, date)

	return entry, nil
}
