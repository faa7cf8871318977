package heuristics

import (
	"regexp"

	"github.com/moyeonlab/contest-board/internal/types"
)

// teamPattern matches recruitment wording in Korean or English.
var teamPattern = regexp.MustCompile(`(?i)팀원모집|팀원\s*모집|리크루팅|recruit`)

// IsRecruitingTeam reports whether the contest's title/summary/tags text
// mentions looking for teammates.
func IsRecruitingTeam(c types.Contest) bool {
	return teamPattern.MatchString(c.SearchText())
}
