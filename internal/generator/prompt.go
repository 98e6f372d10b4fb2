package generator

import (
	"fmt"
	"strings"

	"github.com/neexbeast/tripmuse/internal/engine"
)

// buildCandidatePrompt renders the generation spec as a natural-language
// prompt requesting strict JSON. Hard constraints are embedded as prompt
// text, but the engine re-checks every one of them; the prompt is a hint,
// not an enforcement mechanism.
func buildCandidatePrompt(spec engine.GenerationSpec) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Suggest %d travel destinations reachable by nonstop flight within about %.1f hours.\n", spec.Count, spec.EffectiveCap)
	b.WriteString("Return STRICT JSON only, no prose, no markdown, with this exact shape:\n")
	b.WriteString(`{"candidates":[{"city":"","country":"","region":"","type":"","themes":[],"best_seasons":[],"approx_nonstop_hours":0,"summary":"","highlights":["","",""]}]}` + "\n")
	b.WriteString("Rules:\n")
	b.WriteString("- region is one of: europe, north_africa, sub_saharan_africa, middle_east, central_asia, south_asia, east_asia, southeast_asia, north_america, central_america, caribbean, south_america, oceania, indian_ocean.\n")
	b.WriteString("- type is one of: city, beach, nature, culture.\n")
	b.WriteString("- highlights is exactly 3 short strings, each naming a concrete place plus one sensory or specific detail.\n")
	b.WriteString("- summary is 1-2 sentences explaining the fit.\n")
	b.WriteString("- Spread candidates across different countries and regions.\n")

	if len(spec.Interests) > 0 {
		fmt.Fprintf(&b, "Traveler interests: %s.\n", strings.Join(spec.Interests, ", "))
	}
	if spec.Season != "" {
		fmt.Fprintf(&b, "Travel season: %s; favor destinations at their best then.\n", spec.Season)
	}
	if spec.Party != "" {
		fmt.Fprintf(&b, "Travel party: %s.\n", spec.Party)
	}
	if spec.DurationDays > 0 {
		fmt.Fprintf(&b, "Trip length: about %d days.\n", spec.DurationDays)
	}
	if len(spec.Exclude) > 0 {
		fmt.Fprintf(&b, "Do NOT suggest any of these: %s.\n", strings.Join(spec.Exclude, "; "))
	}

	b.WriteString("Return only the JSON object.\n")
	return b.String()
}

// buildItineraryPrompt renders a day-by-day expansion request for one
// already chosen destination.
func buildItineraryPrompt(city, country string, days int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a %d-day itinerary for %s, %s.\n", days, city, country)
	b.WriteString("Return STRICT JSON only with this exact shape:\n")
	b.WriteString(`{"days":[{"title":"","activities":["",""]}]}` + "\n")
	fmt.Fprintf(&b, "Exactly %d entries in days, each with a short title and 2-4 concrete activities.\n", days)
	b.WriteString("Return only the JSON object.\n")
	return b.String()
}
