package source

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/moyeonlab/contest-board/internal/dates"
	"github.com/moyeonlab/contest-board/internal/types"
)

//go:embed fallback_data.json
var fallbackDataJSON []byte

// fallbackContest is the bundled dataset's record shape. Dates are stored
// as day offsets from "today" so the sample data keeps exercising every
// status bucket no matter when it is served.
type fallbackContest struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Organizer          string   `json:"organizer"`
	Category           string   `json:"category"`
	DeadlineOffsetDays int      `json:"deadline_offset_days"`
	StartOffsetDays    *int     `json:"start_offset_days,omitempty"`
	Tags               []string `json:"tags"`
	Target             string   `json:"target"`
	Summary            string   `json:"summary"`
	SourceURL          string   `json:"source_url"`
	ApplyURL           string   `json:"apply_url"`
	ImageURL           string   `json:"imageUrl,omitempty"`
}

// Fallback serves the bundled sample dataset. It materializes the offset
// dates on every call, so a long-running server keeps a live-looking
// dataset without restarts.
type Fallback struct {
	records []fallbackContest
}

// NewFallback decodes the bundled dataset. The dataset ships inside the
// binary, so a decode failure is a build defect, not a runtime condition.
func NewFallback() (*Fallback, error) {
	var records []fallbackContest
	if err := json.Unmarshal(fallbackDataJSON, &records); err != nil {
		return nil, fmt.Errorf("failed to decode bundled contest dataset: %w", err)
	}
	return &Fallback{records: records}, nil
}

// Contests implements Accessor.
func (f *Fallback) Contests(_ context.Context) ([]types.Contest, error) {
	today := dates.StartOfToday()

	contests := make([]types.Contest, 0, len(f.records))
	for _, r := range f.records {
		c := types.Contest{
			ID:        r.ID,
			Title:     r.Title,
			Organizer: r.Organizer,
			Category:  types.Category(r.Category),
			Deadline:  dates.FormatDateOnly(today.AddDate(0, 0, r.DeadlineOffsetDays)),
			Tags:      r.Tags,
			Target:    r.Target,
			Summary:   r.Summary,
			SourceURL: r.SourceURL,
			ApplyURL:  r.ApplyURL,
			ImageURL:  r.ImageURL,
		}
		if r.StartOffsetDays != nil {
			c.StartDate = dates.FormatDateOnly(today.AddDate(0, 0, *r.StartOffsetDays))
		}
		contests = append(contests, c)
	}
	return contests, nil
}
