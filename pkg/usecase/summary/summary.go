package summary

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"cloud.google.com/go/civil"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/genai"

	"github.com/vass-cornelius/kensho/pkg/adapter"
	"github.com/vass-cornelius/kensho/pkg/model"
	"github.com/vass-cornelius/kensho/pkg/repository"
	"github.com/vass-cornelius/kensho/pkg/utils/logging"
)

//go:embed prompt/monthly.md
var monthlyPromptRaw string

var monthlyPrompt = template.Must(template.New("monthly").Parse(monthlyPromptRaw))

const coachInstruction = "You are a helpful productivity coach. You analyze personal work journals and write honest, encouraging reviews grounded strictly in what the logs record."

// UseCase generates monthly reviews from recorded journal entries. It only
// ever reads the entry store.
type UseCase struct {
	repo    repository.Repository
	gemini  adapter.Gemini
	reports adapter.ReportStore
	now     func() time.Time
}

// Option is a functional option for UseCase
type Option func(*UseCase)

// WithReportStore enables archiving generated reports
func WithReportStore(store adapter.ReportStore) Option {
	return func(uc *UseCase) {
		uc.reports = store
	}
}

// WithClock sets the time source used to resolve the default month
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) {
		uc.now = now
	}
}

// New creates a new summary UseCase instance
func New(repo repository.Repository, gemini adapter.Gemini, opts ...Option) *UseCase {
	uc := &UseCase{
		repo:   repo,
		gemini: gemini,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Report is the outcome of one monthly summary run.
type Report struct {
	Period  model.Period
	Text    string
	Entries int
	Skipped bool
	Archive string
}

// Monthly aggregates the entries of the selected month and generates a
// review. month == 0 selects the previous full calendar month; 1 through 12
// select that month of the current year. A month without entries yields a
// skipped report and no model call at all.
func (uc *UseCase) Monthly(ctx context.Context, month int) (*Report, error) {
	period, err := model.MonthlyPeriod(civil.DateOf(uc.now()), month)
	if err != nil {
		return nil, err
	}

	entries, err := uc.repo.EntriesInRange(ctx, period)
	if err != nil {
		return nil, err
	}

	payload := BuildPayload(entries)
	if payload.Empty() {
		return &Report{
			Period: period,
			Text: fmt.Sprintf("No journal entries found for %s %d. Nothing to summarize.",
				period.Start.Month, period.Start.Year),
			Skipped: true,
		}, nil
	}

	logging.From(ctx).Debug("aggregated journal entries",
		"period", period.Start.String()+".."+period.End.String(),
		"entries", payload.Entries,
		"bytes", len(payload.Text),
	)

	text, err := uc.generate(ctx, period, payload)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Period:  period,
		Text:    text,
		Entries: payload.Entries,
	}
	uc.archive(ctx, report)

	return report, nil
}

// generate makes exactly one model call. Failures are mapped onto the
// summarization error taxonomy and never retried.
func (uc *UseCase) generate(ctx context.Context, period model.Period, payload Payload) (string, error) {
	var prompt strings.Builder
	err := monthlyPrompt.Execute(&prompt, map[string]any{
		"Month": period.Start.Month.String(),
		"Year":  period.Start.Year,
		"Logs":  payload.Text,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to render summary prompt")
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(coachInstruction, ""),
	}
	contents := []*genai.Content{
		genai.NewContentFromText(prompt.String(), genai.RoleUser),
	}

	resp, err := uc.gemini.GenerateContent(ctx, contents, config)
	if err != nil {
		return "", classify(err)
	}

	text := responseText(resp)
	if text == "" {
		return "", goerr.Wrap(model.ErrSummarizeMalformed, "model returned no text")
	}

	return text, nil
}

// classify maps a generation failure onto the summarization error taxonomy.
func classify(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		// No structured API response made it back at all
		return goerr.Wrap(model.ErrSummarizeNetwork, err.Error())
	}

	switch apiErr.Code {
	case 401, 403:
		return goerr.Wrap(model.ErrSummarizeAuth, apiErr.Message, goerr.V("code", apiErr.Code))
	case 429:
		return goerr.Wrap(model.ErrSummarizeQuota, apiErr.Message, goerr.V("code", apiErr.Code))
	default:
		return goerr.Wrap(model.ErrSummarizeUnknown, apiErr.Message,
			goerr.V("code", apiErr.Code), goerr.V("status", apiErr.Status))
	}
}

// responseText extracts the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	return strings.TrimSpace(text.String())
}

// archive saves the report for later reading. Archiving is best effort; a
// failure is logged and the report is still returned to the caller.
func (uc *UseCase) archive(ctx context.Context, report *Report) {
	if uc.reports == nil {
		return
	}

	key := fmt.Sprintf("%04d-%02d.md", report.Period.Start.Year, int(report.Period.Start.Month))
	w, err := uc.reports.Put(ctx, key)
	if err != nil {
		logging.From(ctx).Warn("failed to archive report", "key", key, "error", err)
		return
	}

	if _, err := io.WriteString(w, report.Text); err != nil {
		_ = w.Close()
		logging.From(ctx).Warn("failed to archive report", "key", key, "error", err)
		return
	}
	if err := w.Close(); err != nil {
		logging.From(ctx).Warn("failed to archive report", "key", key, "error", err)
		return
	}

	report.Archive = key
}
