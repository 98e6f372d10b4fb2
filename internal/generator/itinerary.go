package generator

import (
	"context"
	"encoding/json"
	"fmt"
)

// Itinerary is a day-by-day expansion of one chosen destination. There is
// no selection logic here; this is plain text expansion.
type Itinerary struct {
	City    string    `json:"city"`
	Country string    `json:"country"`
	Days    []DayPlan `json:"days"`
}

// DayPlan is one day's slot in an itinerary.
type DayPlan struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

type itineraryEnvelope struct {
	Days []struct {
		Title      string   `json:"title"`
		Activities []string `json:"activities"`
	} `json:"days"`
}

// BuildItinerary expands one destination into daily slots using the primary
// model. Unlike candidate generation there is no fallback ladder; a failure
// is returned to the caller.
func (c *Client) BuildItinerary(ctx context.Context, city, country string, days int) (*Itinerary, error) {
	if days <= 0 {
		days = 3
	}

	content, err := c.complete(ctx, c.cfg.PrimaryModel, buildItineraryPrompt(city, country, days), 0.6)
	if err != nil {
		return nil, fmt.Errorf("itinerary generation for %s, %s: %w", city, country, err)
	}

	blob, err := extractJSONObject(stripFences(content))
	if err != nil {
		return nil, fmt.Errorf("itinerary parse for %s, %s: %w", city, country, err)
	}

	var env itineraryEnvelope
	if err := json.Unmarshal([]byte(blob), &env); err != nil {
		return nil, fmt.Errorf("itinerary unmarshal for %s, %s: %w", city, country, err)
	}
	if len(env.Days) == 0 {
		return nil, fmt.Errorf("itinerary for %s, %s: no days in response", city, country)
	}

	it := &Itinerary{City: city, Country: country}
	for i, d := range env.Days {
		if i >= days {
			break
		}
		it.Days = append(it.Days, DayPlan{Day: i + 1, Title: d.Title, Activities: d.Activities})
	}
	return it, nil
}
