package engine_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/tripmuse/internal/engine"
)

func hoursPtr(v float64) *engine.RawHours {
	return &engine.RawHours{Value: v, Known: true}
}

func rawCandidate(city, country, region string, hours *engine.RawHours) engine.RawCandidate {
	return engine.RawCandidate{
		City:               city,
		Country:            country,
		Region:             region,
		Type:               "city",
		Themes:             []string{"culture"},
		BestSeasons:        []string{"spring"},
		ApproxNonstopHours: hours,
		Summary:            "A fine trip.",
		Highlights:         []string{"Old town walk", "Market breakfast", "River sunset"},
	}
}

func newNormalizer() *engine.Normalizer {
	return engine.NewNormalizer(engine.DefaultRegionFloors(), engine.NewSafetyList(nil, nil))
}

func TestNormalize_RegionFloorCorrection(t *testing.T) {
	n := newNormalizer()

	// A middle_east destination reported at 2h is implausible from a
	// European origin; it must be raised to the region floor.
	out, drops := n.Normalize([]engine.RawCandidate{
		rawCandidate("Dubai", "United Arab Emirates", "middle_east", hoursPtr(2)),
	})

	require.Empty(t, drops)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].ApproxNonstopHours)
	assert.GreaterOrEqual(t, *out[0].ApproxNonstopHours, 5.5)
}

func TestNormalize_OverestimateIsTrusted(t *testing.T) {
	n := newNormalizer()

	out, _ := n.Normalize([]engine.RawCandidate{
		rawCandidate("Dubai", "United Arab Emirates", "middle_east", hoursPtr(8)),
	})

	require.Len(t, out, 1)
	assert.Equal(t, 8.0, *out[0].ApproxNonstopHours)
}

func TestNormalize_DropsEmptyIdentity(t *testing.T) {
	n := newNormalizer()

	out, drops := n.Normalize([]engine.RawCandidate{
		rawCandidate("", "Spain", "europe", nil),
		rawCandidate("Barcelona", "   ", "europe", nil),
	})

	assert.Empty(t, out)
	require.Len(t, drops, 2)
	assert.Equal(t, engine.DropEmptyIdentity, drops[0].Reason)
	assert.Equal(t, engine.DropEmptyIdentity, drops[1].Reason)
}

func TestNormalize_DropsSafetyExcluded(t *testing.T) {
	safety := engine.NewSafetyList([]string{"Syria"}, []string{"Kabul"})
	n := engine.NewNormalizer(engine.DefaultRegionFloors(), safety)

	out, drops := n.Normalize([]engine.RawCandidate{
		rawCandidate("Damascus", "Syria", "middle_east", nil),
		rawCandidate("Kabul", "Afghanistan", "central_asia", nil),
		rawCandidate("Lisbon", "Portugal", "europe", nil),
	})

	require.Len(t, out, 1)
	assert.Equal(t, "Lisbon", out[0].City)
	require.Len(t, drops, 2)
	assert.Equal(t, engine.DropRestricted, drops[0].Reason)
}

func TestNormalize_HighlightsExactlyThree(t *testing.T) {
	n := newNormalizer()

	short := rawCandidate("Rome", "Italy", "europe", nil)
	short.Highlights = []string{"Pantheon", "  "}

	long := rawCandidate("Lisbon", "Portugal", "europe", nil)
	long.Highlights = []string{"Tram 28", "Pastéis de nata", "Alfama", "A fourth bullet"}

	out, drops := n.Normalize([]engine.RawCandidate{short, long})

	require.Len(t, drops, 1)
	assert.Equal(t, engine.DropBadHighlights, drops[0].Reason)

	require.Len(t, out, 1)
	assert.Len(t, out[0].Highlights, 3)
}

func TestNormalize_WhitespaceCollapsed(t *testing.T) {
	n := newNormalizer()

	out, _ := n.Normalize([]engine.RawCandidate{
		rawCandidate("  San   Sebastián ", " Spain ", "europe", nil),
	})

	require.Len(t, out, 1)
	assert.Equal(t, "San Sebastián", out[0].City)
	assert.Equal(t, "Spain", out[0].Country)
}

func TestNormalize_UnknownRegionIsLowestTrust(t *testing.T) {
	n := newNormalizer()

	out, drops := n.Normalize([]engine.RawCandidate{
		rawCandidate("Tbilisi", "Georgia", "the caucasus", hoursPtr(4)),
	})

	require.Empty(t, drops, "an unmatched region must not error the batch")
	require.Len(t, out, 1)
	assert.Equal(t, engine.RegionUnknown, out[0].Region)
	// No floor for unknown regions: the reported hours stand.
	assert.Equal(t, 4.0, *out[0].ApproxNonstopHours)
}

func TestNormalize_NonPositiveHoursBecomeUnknown(t *testing.T) {
	n := newNormalizer()

	out, _ := n.Normalize([]engine.RawCandidate{
		rawCandidate("Porto", "Portugal", "europe", hoursPtr(0)),
		rawCandidate("Vigo", "Spain", "europe", hoursPtr(-2)),
	})

	require.Len(t, out, 2)
	assert.Nil(t, out[0].ApproxNonstopHours)
	assert.Nil(t, out[1].ApproxNonstopHours)
}

func TestRawHours_UnmarshalTolerant(t *testing.T) {
	cases := []struct {
		name  string
		json  string
		known bool
		value float64
	}{
		{"number", `{"approx_nonstop_hours": 3.5}`, true, 3.5},
		{"numeric string", `{"approx_nonstop_hours": "3.5"}`, true, 3.5},
		{"null", `{"approx_nonstop_hours": null}`, false, 0},
		{"nonsense", `{"approx_nonstop_hours": "about four"}`, false, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var raw engine.RawCandidate
			require.NoError(t, json.Unmarshal([]byte(tc.json), &raw))
			if !tc.known {
				if raw.ApproxNonstopHours != nil {
					assert.False(t, raw.ApproxNonstopHours.Known)
				}
				return
			}
			require.NotNil(t, raw.ApproxNonstopHours)
			assert.True(t, raw.ApproxNonstopHours.Known)
			assert.Equal(t, tc.value, raw.ApproxNonstopHours.Value)
		})
	}
}
