// Package heuristics provides best-effort text classifiers for contests:
// interest-field matching, prize-amount parsing and team-recruitment
// detection. Everything here is a pure function over the contest's free
// text and never fails on empty or missing fields.
package heuristics

import (
	"regexp"

	"github.com/moyeonlab/contest-board/internal/types"
)

// fieldPatterns maps each interest field to its keyword pattern. Matching
// is non-exclusive: a contest may match zero, one or several fields. New
// fields are added here, not as code branches.
var fieldPatterns = map[types.FieldKey]*regexp.Regexp{
	types.FieldStartup:    regexp.MustCompile(`(?i)창업|스타트업|사업화|BM|아이디어`),
	types.FieldITSW:       regexp.MustCompile(`(?i)IT|SW|소프트웨어|개발|코딩|해커톤|AI|데이터|앱|웹|알고리즘`),
	types.FieldDesign:     regexp.MustCompile(`(?i)디자인|포스터|로고|UX|UI|영상|콘텐츠`),
	types.FieldMarketing:  regexp.MustCompile(`(?i)마케팅|홍보|브랜딩|SNS|캠페인`),
	types.FieldEngineer:   regexp.MustCompile(`(?i)공학|제조|로봇|기계|전기|전자|화학|반도체`),
	types.FieldHumanities: regexp.MustCompile(`(?i)인문|사회|글쓰기|에세이|독서|정책|문화|역사`),
}

// AllFields lists the interest fields in display order.
var AllFields = []types.FieldKey{
	types.FieldStartup,
	types.FieldITSW,
	types.FieldDesign,
	types.FieldMarketing,
	types.FieldEngineer,
	types.FieldHumanities,
}

// MatchesField reports whether the contest's title/summary/tags text
// matches the given field's keyword pattern. Unknown fields match nothing.
func MatchesField(c types.Contest, field types.FieldKey) bool {
	pattern, ok := fieldPatterns[field]
	if !ok {
		return false
	}
	return pattern.MatchString(c.SearchText())
}

// MatchesAnyField reports whether the contest matches at least one of the
// given fields. An empty field set means "no field filter active" and
// matches everything.
func MatchesAnyField(c types.Contest, fields []types.FieldKey) bool {
	if len(fields) == 0 {
		return true
	}
	for _, f := range fields {
		if MatchesField(c, f) {
			return true
		}
	}
	return false
}

// MatchedFields returns every field the contest matches, in display order.
func MatchedFields(c types.Contest) []types.FieldKey {
	var matched []types.FieldKey
	for _, f := range AllFields {
		if MatchesField(c, f) {
			matched = append(matched, f)
		}
	}
	return matched
}
