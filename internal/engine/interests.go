package engine

import (
	"regexp"
	"strings"
)

// Canonical interest tags. Candidate themes and classified user interests
// share this vocabulary.
const (
	TagBeach      = "beach"
	TagNature     = "nature"
	TagMuseums    = "museums"
	TagCulture    = "culture"
	TagFood       = "food"
	TagNightlife  = "nightlife"
	TagAdventure  = "adventure"
	TagRelaxation = "relaxation"
	TagFamily     = "family"
	TagRomance    = "romance"
	TagShopping   = "shopping"
)

// interestRule maps a free-text pattern to a canonical tag. The table is
// evaluated in order and the first matching rule wins, so more specific
// patterns come first. This is plain pattern classification, not NLP.
type interestRule struct {
	pattern *regexp.Regexp
	tag     string
}

var interestRules = []interestRule{
	{regexp.MustCompile(`(?i)museum|gallery|galleries|art\b|exhibit`), TagMuseums},
	{regexp.MustCompile(`(?i)beach|coast|sea\b|island|snorkel|swim|sun\b|resort`), TagBeach},
	{regexp.MustCompile(`(?i)hik|trek|mountain|nature|outdoor|wildlife|national park|forest|lake`), TagNature},
	{regexp.MustCompile(`(?i)food|cuisine|culinar|restaurant|wine|tapas|street.?food|market`), TagFood},
	{regexp.MustCompile(`(?i)night|party|club|bar\b|bars\b|music|concert`), TagNightlife},
	{regexp.MustCompile(`(?i)adventure|surf|dive|diving|ski|climb|kayak|raft`), TagAdventure},
	{regexp.MustCompile(`(?i)relax|spa\b|wellness|quiet|calm|slow`), TagRelaxation},
	{regexp.MustCompile(`(?i)family|kid|child|playground`), TagFamily},
	{regexp.MustCompile(`(?i)romanc|romantic|honeymoon|couple`), TagRomance},
	{regexp.MustCompile(`(?i)shop|boutique|bazaar|souk`), TagShopping},
	{regexp.MustCompile(`(?i)cultur|histor|heritage|castle|temple|ruin|architect|old town|city`), TagCulture},
}

// canonicalTags is the closed vocabulary for exact matches.
var canonicalTags = map[string]bool{
	TagBeach: true, TagNature: true, TagMuseums: true, TagCulture: true,
	TagFood: true, TagNightlife: true, TagAdventure: true, TagRelaxation: true,
	TagFamily: true, TagRomance: true, TagShopping: true,
}

// ClassifyInterest maps one free-text interest onto a canonical tag.
// Exact canonical labels pass through; otherwise the ordered rule table is
// consulted. Returns "" when nothing matches.
func ClassifyInterest(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	if canonicalTags[s] {
		return s
	}
	for _, r := range interestRules {
		if r.pattern.MatchString(s) {
			return r.tag
		}
	}
	return ""
}

// ClassifyInterests maps a list of free-text interests onto a deduplicated
// canonical tag set, preserving first-seen order.
func ClassifyInterests(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	var out []string
	for _, s := range raw {
		tag := ClassifyInterest(s)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
