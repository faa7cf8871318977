package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/moyeonlab/contest-board/internal/calendar"
	"github.com/moyeonlab/contest-board/internal/dates"
	"github.com/moyeonlab/contest-board/internal/filter"
	"github.com/moyeonlab/contest-board/internal/ics"
	"github.com/moyeonlab/contest-board/internal/status"
	"github.com/moyeonlab/contest-board/internal/types"
)

// ListContestsResponse is the /contests payload.
type ListContestsResponse struct {
	Contests []types.Contest `json:"contests"`
	Count    int             `json:"count"`
}

// handleListContests lists contests with the list page's filters:
// status (ALL|OPEN|URGENT), category, q (search) and sort
// (DEADLINE|NEWEST).
func (s *Server) handleListContests(w http.ResponseWriter, r *http.Request) {
	contests, err := s.contests.Contests(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Contest source error: "+err.Error())
		return
	}

	opts := filter.ListOptions{
		Status:   filter.StatusFilter(r.URL.Query().Get("status")),
		Category: types.Category(r.URL.Query().Get("category")),
		Query:    r.URL.Query().Get("q"),
		Sort:     filter.SortOrder(r.URL.Query().Get("sort")),
	}

	filtered := filter.ApplyList(contests, opts, dates.StartOfToday())
	s.jsonResponse(w, http.StatusOK, ListContestsResponse{
		Contests: filtered,
		Count:    len(filtered),
	})
}

// handleHome returns the home dashboard's status groups.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	contests, err := s.contests.Contests(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Contest source error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, status.PartitionByStatus(contests, dates.StartOfToday()))
}

// EventView is a calendar event with its display badge resolved.
type EventView struct {
	Kind    types.EventKind `json:"kind"`
	Badge   string          `json:"badge"`
	Contest types.Contest   `json:"contest"`
}

// CalendarMonthResponse is the /calendar/{year}/{month} payload. Days maps
// day-of-month to that day's ordered events; days without events are
// absent.
type CalendarMonthResponse struct {
	Year  int                 `json:"year"`
	Month int                 `json:"month"`
	Days  map[int][]EventView `json:"days"`
}

// handleCalendarMonth projects the (filtered) contests onto a month grid.
// Filters: fields (comma separated), prize (range bucket), team=true.
func (s *Server) handleCalendarMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil || year < 1 {
		s.errorResponse(w, http.StatusBadRequest, "Invalid year")
		return
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil || month < 1 || month > 12 {
		s.errorResponse(w, http.StatusBadRequest, "Invalid month")
		return
	}

	contests, err := s.contests.Contests(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Contest source error: "+err.Error())
		return
	}

	filtered := filter.ApplyCalendar(contests, calendarOptions(r))
	grid := calendar.ProjectMonth(filtered, year, time.Month(month))

	today := dates.StartOfToday()
	days := make(map[int][]EventView, len(grid))
	for day, events := range grid {
		views := make([]EventView, 0, len(events))
		for _, e := range events {
			views = append(views, EventView{
				Kind:    e.Kind,
				Badge:   calendar.EventBadge(e, today),
				Contest: e.Contest,
			})
		}
		days[day] = views
	}

	s.jsonResponse(w, http.StatusOK, CalendarMonthResponse{
		Year:  year,
		Month: month,
		Days:  days,
	})
}

// TodaysDeadlinesResponse is the /calendar/today payload.
type TodaysDeadlinesResponse struct {
	Date     string          `json:"date"`
	Contests []types.Contest `json:"contests"`
}

// handleTodaysDeadlines lists the contests whose deadline is today,
// honoring the same sidebar filters as the month view.
func (s *Server) handleTodaysDeadlines(w http.ResponseWriter, r *http.Request) {
	contests, err := s.contests.Contests(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Contest source error: "+err.Error())
		return
	}

	today := dates.StartOfToday()
	filtered := filter.ApplyCalendar(contests, calendarOptions(r))

	s.jsonResponse(w, http.StatusOK, TodaysDeadlinesResponse{
		Date:     dates.FormatDateOnly(today),
		Contests: calendar.TodaysDeadlines(filtered, today),
	})
}

// handleCalendarICS serves the visible contests as an iCalendar feed.
func (s *Server) handleCalendarICS(w http.ResponseWriter, r *http.Request) {
	contests, err := s.contests.Contests(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Contest source error: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="contests.ics"`)
	if _, err := w.Write([]byte(ics.Export(contests, dates.StartOfToday()))); err != nil {
		// Response already started; nothing sensible left to send.
		return
	}
}

// calendarOptions reads the calendar sidebar filters from query params.
func calendarOptions(r *http.Request) filter.CalendarOptions {
	opts := filter.CalendarOptions{
		Prize:    types.PrizeRange(r.URL.Query().Get("prize")),
		TeamOnly: r.URL.Query().Get("team") == "true",
	}
	if raw := r.URL.Query().Get("fields"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				opts.Fields = append(opts.Fields, types.FieldKey(f))
			}
		}
	}
	return opts
}
