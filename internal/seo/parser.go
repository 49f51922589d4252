package seo

import (
	"regexp"
	"strconv"
	"strings"
)

// Parsing of model output is best effort: the analysis comes back as free
// text, and anything the patterns miss degrades to documented defaults
// instead of failing the request.

// DefaultScore is used when no numeric score can be found in the analysis.
const DefaultScore = 70

// defaultRecommendations are returned when no list is detected.
var defaultRecommendations = []string{
	"Add the target keywords to the meta title",
	"Add more internal links",
}

var (
	scorePattern  = regexp.MustCompile(`(?i)(\d{1,3})\s*/\s*100|score\s*[:：]\s*(\d{1,3})`)
	listPattern   = regexp.MustCompile(`^\s*(?:\d+[.)]?|[-*•・])[\s.]*(\S.*)$`)
	metaTitleRe   = regexp.MustCompile(`(?i)meta\s*title\s*[:：]\s*(.+)`)
	metaDescrRe   = regexp.MustCompile(`(?i)meta\s*description\s*[:：]\s*(.+)`)
)

// ParseScore extracts a 0-100 score from analysis text, matching "NN/100" or
// "score: NN". Returns DefaultScore when neither form appears.
func ParseScore(text string) int {
	m := scorePattern.FindStringSubmatch(text)
	if m == nil {
		return DefaultScore
	}

	raw := m[1]
	if raw == "" {
		raw = m[2]
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultScore
	}
	return score
}

// ParseRecommendations extracts list items (numbered, dashed, or bulleted
// lines) from analysis text. Returns fixed fallback recommendations when no
// list is detected.
func ParseRecommendations(text string) []string {
	var recs []string
	for _, line := range strings.Split(text, "\n") {
		m := listPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if rec := strings.TrimSpace(m[1]); rec != "" {
			recs = append(recs, rec)
		}
	}

	if len(recs) == 0 {
		out := make([]string, len(defaultRecommendations))
		copy(out, defaultRecommendations)
		return out
	}
	return recs
}

// ParseMetaTags extracts "meta title: ..." and "meta description: ..." lines.
// Either value is empty when unmatched; the caller supplies fallbacks.
func ParseMetaTags(text string) (title, description string) {
	if m := metaTitleRe.FindStringSubmatch(text); m != nil {
		title = strings.TrimSpace(m[1])
	}
	if m := metaDescrRe.FindStringSubmatch(text); m != nil {
		description = strings.TrimSpace(m[1])
	}
	return title, description
}
