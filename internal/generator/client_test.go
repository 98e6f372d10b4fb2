package generator_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/tripmuse/internal/engine"
	"github.com/neexbeast/tripmuse/internal/generator"
)

func chatReply(t *testing.T, w http.ResponseWriter, content string) {
	t.Helper()
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func testConfig(baseURL string) generator.Config {
	return generator.Config{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		PrimaryModel:   "inspire-xl",
		SecondaryModel: "inspire-lite",
		Temperature:    0.8,
	}
}

func TestGenerate_Success(t *testing.T) {
	var gotPath, gotAuth, gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		var req struct {
			Model string `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotModel = req.Model

		chatReply(t, w, candidateJSON)
	}))
	defer srv.Close()

	client := generator.NewClientWithHTTP(testConfig(srv.URL), srv.Client())

	raws, err := client.Generate(context.Background(), engine.TierPrimary, engine.GenerationSpec{Count: 16})

	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, "Lisbon", raws[0].City)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "inspire-xl", gotModel)
}

func TestGenerate_SecondaryTierUsesSecondaryModel(t *testing.T) {
	var gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model string `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotModel = req.Model
		chatReply(t, w, candidateJSON)
	}))
	defer srv.Close()

	client := generator.NewClientWithHTTP(testConfig(srv.URL), srv.Client())

	_, err := client.Generate(context.Background(), engine.TierSecondary, engine.GenerationSpec{})

	require.NoError(t, err)
	assert.Equal(t, "inspire-lite", gotModel)
}

func TestGenerate_ServerErrorIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "internal error detail that must stay internal", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := generator.NewClientWithHTTP(testConfig(srv.URL), srv.Client())

	_, err := client.Generate(context.Background(), engine.TierPrimary, engine.GenerationSpec{})

	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrUpstreamTransport)
	assert.NotContains(t, err.Error(), "internal error detail")
}

func TestGenerate_DeadlineIsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		chatReply(t, w, candidateJSON)
	}))
	defer srv.Close()

	client := generator.NewClientWithHTTP(testConfig(srv.URL), srv.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Generate(ctx, engine.TierPrimary, engine.GenerationSpec{})

	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrUpstreamTimeout)
}

func TestGenerate_UnparsableContentIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		chatReply(t, w, "I'd rather talk about something else.")
	}))
	defer srv.Close()

	client := generator.NewClientWithHTTP(testConfig(srv.URL), srv.Client())

	_, err := client.Generate(context.Background(), engine.TierPrimary, engine.GenerationSpec{})

	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrUpstreamParse)
}

func TestGenerate_EmptyChoicesIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := generator.NewClientWithHTTP(testConfig(srv.URL), srv.Client())

	_, err := client.Generate(context.Background(), engine.TierPrimary, engine.GenerationSpec{})

	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrUpstreamParse)
}

func TestBuildItinerary(t *testing.T) {
	itineraryJSON := `{"days":[` +
		`{"title":"Old town","activities":["Walk the Alfama","Tram 28","Fado dinner"]},` +
		`{"title":"By the water","activities":["Belem pastries","MAAT museum"]},` +
		`{"title":"Day trip","activities":["Sintra palaces"]}` +
		`]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model string `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "inspire-xl", req.Model)
		chatReply(t, w, "```json\n"+itineraryJSON+"\n```")
	}))
	defer srv.Close()

	client := generator.NewClientWithHTTP(testConfig(srv.URL), srv.Client())

	it, err := client.BuildItinerary(context.Background(), "Lisbon", "Portugal", 3)

	require.NoError(t, err)
	assert.Equal(t, "Lisbon", it.City)
	require.Len(t, it.Days, 3)
	assert.Equal(t, 1, it.Days[0].Day)
	assert.Equal(t, "Old town", it.Days[0].Title)
}

func TestBuildItinerary_TruncatesToRequestedDays(t *testing.T) {
	itineraryJSON := `{"days":[{"title":"One"},{"title":"Two"},{"title":"Three"},{"title":"Four"}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		chatReply(t, w, itineraryJSON)
	}))
	defer srv.Close()

	client := generator.NewClientWithHTTP(testConfig(srv.URL), srv.Client())

	it, err := client.BuildItinerary(context.Background(), "Lisbon", "Portugal", 2)

	require.NoError(t, err)
	assert.Len(t, it.Days, 2)
}
