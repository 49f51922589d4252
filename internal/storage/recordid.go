package storage

import (
	"strconv"
	"strings"
)

// Record IDs cross JSON boundaries that erase the distinction between the
// in-process store's integer counters and Mongo's hex object IDs, so the
// canonical representation at this layer is a string. NormalizeID is applied
// once where an ID enters the system; MatchesID preserves the looser matching
// the in-process store has always honored for IDs that arrive re-encoded
// (e.g. "007" or 7.0 for record 7).

// NormalizeID canonicalizes an externally supplied ID. Integer-typed values
// are rendered in decimal; strings are trimmed.
func NormalizeID(id any) string {
	switch v := id.(type) {
	case string:
		return strings.TrimSpace(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		// JSON numbers decode as float64; only integral values are valid IDs.
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// MatchesID reports whether a requested ID refers to the stored one. Exact
// string equality wins; otherwise both sides are compared numerically when
// they parse as integers, which absorbs leading zeros and float re-encodings.
func MatchesID(stored, requested string) bool {
	requested = strings.TrimSpace(requested)
	if stored == requested {
		return true
	}

	sn, serr := strconv.ParseInt(stored, 10, 64)
	rn, rerr := parseNumericID(requested)
	return serr == nil && rerr == nil && sn == rn
}

func parseNumericID(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int64(f)) {
		return 0, strconv.ErrSyntax
	}
	return int64(f), nil
}
