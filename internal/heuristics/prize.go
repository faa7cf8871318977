package heuristics

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/moyeonlab/contest-board/internal/types"
)

// Korean currency block sizes, in won.
const (
	manWon = 10_000
	eokWon = 100_000_000
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	eokPattern        = regexp.MustCompile(`(\d+(?:\.\d+)?)억`)
	manPattern        = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*|\d+)(?:만원|만)`)
)

// ParsePrizeAmount extracts an approximate prize amount in won from a
// contest summary. It is deliberately rough: "총 상금 500만원", "상금
// 1,000만원" and "1억" are the shapes it handles. The 억 pattern is checked
// first and wins when both appear. The second return is false when no
// amount could be read — "unknown" is a distinct outcome from zero.
func ParsePrizeAmount(summary string) (int64, bool) {
	s := whitespacePattern.ReplaceAllString(summary, "")

	if m := eokPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return int64(math.Round(n * eokWon)), true
	}

	if m := manPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64)
		if err != nil {
			return 0, false
		}
		return n * manWon, true
	}

	return 0, false
}

// MatchesPrizeRange reports whether a parsed prize amount falls in the
// given filter bucket. An unknown amount (known == false) matches only
// RangeAll: absence of information must not slip through a numeric filter.
func MatchesPrizeRange(amount int64, known bool, bucket types.PrizeRange) bool {
	if bucket == types.RangeAll {
		return true
	}
	if !known {
		return false
	}

	man := float64(amount) / manWon
	switch bucket {
	case types.RangeUnder100:
		return man < 100
	case types.Range100To300:
		return man >= 100 && man < 300
	case types.Range300To1000:
		return man >= 300 && man < 1000
	case types.RangeOver1000:
		return man >= 1000
	default:
		return false
	}
}
