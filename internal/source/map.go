package source

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/moyeonlab/contest-board/internal/dates"
	"github.com/moyeonlab/contest-board/internal/types"
)

// Defaults applied while mapping sparse admin records.
const (
	defaultOrganizer = "한양대 ERICA"
	defaultTarget    = "전체"
	untitledTitle    = "(제목 없음)"
	maxMappedTags    = 5
)

// AdminContest is the record shape the admin feed serves. Fields are
// mostly optional; date fields are ISO timestamps rather than the public
// date-only form.
type AdminContest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	ApplyURL    string   `json:"applyUrl,omitempty"`
	Category    string   `json:"category,omitempty"`
	Status      string   `json:"status,omitempty"`
	Targets     []string `json:"targets,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
	ViewCount   int      `json:"viewCount,omitempty"`
}

// MapAdminContest converts an admin record into the public Contest shape.
// The deadline falls back endDate -> startDate -> today so the classifier
// always has something to work with; the admin schema has no separate
// source URL yet, so applyUrl stands in for both links.
func MapAdminContest(a AdminContest, today time.Time) types.Contest {
	deadline := toDateOnly(a.EndDate)
	if deadline == "" {
		deadline = toDateOnly(a.StartDate)
	}
	if deadline == "" {
		deadline = dates.FormatDateOnly(dates.StartOfDay(today))
	}

	targets := a.Targets
	targetText := defaultTarget
	organizer := defaultOrganizer
	if len(targets) > 0 {
		targetText = strings.Join(targets, ", ")
		organizer = targets[0]
	}

	tags := targets
	if len(tags) > maxMappedTags {
		tags = tags[:maxMappedTags]
	}

	id := a.ID
	if id == "" {
		id = uuid.NewString()
	}

	title := a.Title
	if title == "" {
		title = untitledTitle
	}

	return types.Contest{
		ID:        id,
		Title:     title,
		Organizer: organizer,
		Category:  coerceCategory(a.Category),
		StartDate: toDateOnly(a.StartDate),
		EndDate:   deadline,
		Deadline:  deadline,
		Tags:      tags,
		Target:    targetText,
		Summary:   stripHTML(a.Description),
		SourceURL: a.ApplyURL,
		ApplyURL:  a.ApplyURL,
		ImageURL:  a.ImageURL,
	}
}

// coerceCategory maps the admin's free-form category string onto the fixed
// public enumeration, defaulting to campus contest.
func coerceCategory(input string) types.Category {
	switch types.Category(input) {
	case types.CategorySupporters:
		return types.CategorySupporters
	case types.CategoryICPBL:
		return types.CategoryICPBL
	case types.CategoryExternal:
		return types.CategoryExternal
	default:
		return types.CategoryCampus
	}
}

// toDateOnly reduces an ISO timestamp (or an already date-only string) to
// YYYY-MM-DD. Anything unparseable becomes the empty string.
func toDateOnly(input string) string {
	if input == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return dates.FormatDateOnly(t)
	}
	if t, ok := dates.ParseDateOnly(input); ok {
		return dates.FormatDateOnly(t)
	}
	return ""
}

// stripHTML flattens a rich-text admin description to plain text for the
// summary field; the prize parser and search scan it as-is. Input that is
// not HTML passes through unchanged.
func stripHTML(description string) string {
	if description == "" || !strings.Contains(description, "<") {
		return description
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return description
	}
	return strings.TrimSpace(doc.Text())
}
