// Package types provides type definitions for structured data used throughout the contest-board system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Category is the fixed set of contest categories used by the feed.
type Category string

// Contest categories as they appear in the public feed.
const (
	CategoryCampus     Category = "교내 공모전"
	CategorySupporters Category = "서포터즈"
	CategoryICPBL      Category = "IC-PBL"
	CategoryExternal   Category = "대외활동"
)

// Contest represents a single contest/opportunity posting as served to the
// presentation surfaces. Date fields are date-only strings (YYYY-MM-DD);
// StartDate and EndDate may be empty, Deadline is expected to be populated
// by the data source.
type Contest struct {
	ID        string   `json:"id" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	Organizer string   `json:"organizer"`
	Category  Category `json:"category"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Deadline  string   `json:"deadline" validate:"required"`
	Tags      []string `json:"tags"`
	Target    string   `json:"target"`
	Summary   string   `json:"summary"`
	SourceURL string   `json:"source_url"`
	ApplyURL  string   `json:"apply_url"`
	ImageURL  string   `json:"imageUrl,omitempty"`
}

// SearchText returns the concatenation of title, summary and tags that the
// text heuristics scan. Missing fields contribute empty strings.
func (c Contest) SearchText() string {
	text := c.Title + " " + c.Summary
	for _, tag := range c.Tags {
		text += " " + tag
	}
	return text
}

// Validate validates the Contest using the validator.
func (c *Contest) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// ContestStatus is the lifecycle bucket a contest belongs to relative to a
// reference date. It is derived, never stored.
type ContestStatus string

// Lifecycle buckets. StatusHidden covers both unparseable deadlines and
// contests closed for more than the visible window.
const (
	StatusOngoing      ContestStatus = "ONGOING"
	StatusUrgent       ContestStatus = "URGENT"
	StatusClosedRecent ContestStatus = "CLOSED_RECENT"
	StatusHidden       ContestStatus = "HIDDEN"
)

// EventKind distinguishes the two kinds of calendar-day occurrences a
// contest can produce.
type EventKind string

// Calendar event kinds.
const (
	EventStart    EventKind = "START"
	EventDeadline EventKind = "DEADLINE"
)

// CalendarEvent is a contest's start or deadline landing on a specific
// calendar day. It is produced transiently while building a month grid.
type CalendarEvent struct {
	Kind    EventKind `json:"kind"`
	Contest Contest   `json:"contest"`
}

// FieldKey identifies one of the interest-field filter categories on the
// calendar page. A contest may match any number of fields.
type FieldKey string

// Interest fields, matched by keyword patterns over free text.
const (
	FieldStartup    FieldKey = "창업"
	FieldITSW       FieldKey = "IT/SW"
	FieldDesign     FieldKey = "디자인"
	FieldMarketing  FieldKey = "마케팅"
	FieldEngineer   FieldKey = "공학"
	FieldHumanities FieldKey = "인문/사회"
)

// PrizeRange is a prize-size filter bucket, in units of 10,000 KRW.
type PrizeRange string

// Prize-range buckets. RangeAll matches every contest including those whose
// prize could not be parsed; the numeric buckets never match an unknown
// amount.
const (
	RangeAll       PrizeRange = "ALL"
	RangeUnder100  PrizeRange = "UNDER_100"
	Range100To300  PrizeRange = "100_300"
	Range300To1000 PrizeRange = "300_1000"
	RangeOver1000  PrizeRange = "OVER_1000"
)
