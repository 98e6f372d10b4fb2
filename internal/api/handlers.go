package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/neexbeast/tripmuse/internal/engine"
	"github.com/neexbeast/tripmuse/internal/storage"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	engine      ShortlistEngine
	itineraries ItineraryBuilder
	repo        FeedbackRepo
	log         *slog.Logger
	seed        func() int64
}

// NewHandlers constructs Handlers with all required dependencies. The jitter
// seed is time-derived so identical quiz answers don't return an identical
// shortlist twice in a row.
func NewHandlers(eng ShortlistEngine, itineraries ItineraryBuilder, repo FeedbackRepo, log *slog.Logger) *Handlers {
	return &Handlers{
		engine:      eng,
		itineraries: itineraries,
		repo:        repo,
		log:         log,
		seed:        func() int64 { return time.Now().UnixNano() },
	}
}

// NewHandlersWithSeed constructs Handlers with a fixed seed source (for tests).
func NewHandlersWithSeed(eng ShortlistEngine, itineraries ItineraryBuilder, repo FeedbackRepo, log *slog.Logger, seed func() int64) *Handlers {
	h := NewHandlers(eng, itineraries, repo, log)
	h.seed = seed
	return h
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// inspireRequest is the inbound quiz payload. Every field is optional;
// this is a best-effort recommendation surface, not a transactional API.
type inspireRequest struct {
	Origin      string `json:"origin"`
	Preferences struct {
		FlightTimeHours float64  `json:"flight_time_hours"`
		Duration        string   `json:"duration"`
		Group           string   `json:"group"`
		Interests       []string `json:"interests"`
		Season          string   `json:"season"`
	} `json:"preferences"`
	Exclude           []string `json:"exclude"`
	BuildItineraryFor *struct {
		City    string `json:"city"`
		Country string `json:"country"`
	} `json:"buildItineraryFor"`
}

type inspireMeta struct {
	Mode engine.Mode `json:"mode"`
}

type inspireResponse struct {
	Meta inspireMeta        `json:"meta"`
	Top5 []engine.Candidate `json:"top5"`
}

// daysFromDuration maps quiz duration codes onto trip lengths.
var daysFromDuration = map[string]int{
	"weekend-2d":    2,
	"mini-4d":       4,
	"week-7d":       7,
	"two-weeks-14d": 14,
	"fortnight-14d": 14,
}

// Inspire handles POST /api/v1/inspire. A malformed body falls back to
// defaults rather than rejecting the request. When buildItineraryFor is
// present the shortlist engine is bypassed entirely.
func (h *Handlers) Inspire(w http.ResponseWriter, r *http.Request) {
	var body inspireRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.log.Warn("malformed inspire body, substituting defaults", "err", err)
		body = inspireRequest{}
	}

	if it := body.BuildItineraryFor; it != nil && strings.TrimSpace(it.City) != "" {
		h.buildItinerary(w, r, it.City, it.Country, body.Preferences.Duration)
		return
	}

	days := daysFromDuration[body.Preferences.Duration]
	if days == 0 {
		days = 3
	}

	req := engine.SelectionRequest{
		MaxFlightHours: body.Preferences.FlightTimeHours,
		Party:          parseParty(body.Preferences.Group),
		Interests:      engine.ClassifyInterests(body.Preferences.Interests),
		Season:         parseSeason(body.Preferences.Season),
		Exclusions:     body.Exclude,
		N:              engine.DefaultShortlistSize,
		Seed:           h.seed(),
		DurationDays:   days,
	}

	shortlist, err := h.engine.Recommend(r.Context(), req)
	if err != nil {
		h.log.Error("recommend failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, inspireResponse{
		Meta: inspireMeta{Mode: shortlist.Mode},
		Top5: shortlist.Results,
	})
}

func (h *Handlers) buildItinerary(w http.ResponseWriter, r *http.Request, city, country, duration string) {
	days := daysFromDuration[duration]
	if days == 0 {
		days = 3
	}

	it, err := h.itineraries.BuildItinerary(r.Context(), city, country, days)
	if err != nil {
		// Upstream detail stays in the logs, never in the response body.
		h.log.Error("itinerary generation failed", "city", city, "err", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "itinerary generation failed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"meta":      inspireMeta{Mode: engine.ModeLive},
		"itinerary": it,
	})
}

// feedbackRequest mirrors the quiz UI's reaction payload.
type feedbackRequest struct {
	IdeaID  string         `json:"ideaId"`
	Value   int            `json:"value"`
	Note    string         `json:"note"`
	Answers map[string]any `json:"answers"`
}

// Feedback handles POST /api/v1/feedback.
func (h *Handlers) Feedback(w http.ResponseWriter, r *http.Request) {
	var body feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.IdeaID) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ideaId is required"})
		return
	}

	fb := storage.Feedback{
		IdeaID:  strings.TrimSpace(body.IdeaID),
		Value:   body.Value,
		Note:    body.Note,
		Answers: body.Answers,
	}
	if err := h.repo.InsertFeedback(r.Context(), fb); err != nil {
		h.log.Error("feedback insert failed", "idea", fb.IdeaID, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to store feedback"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func parseParty(s string) engine.TravelParty {
	switch engine.TravelParty(strings.ToLower(strings.TrimSpace(s))) {
	case engine.PartySolo:
		return engine.PartySolo
	case engine.PartyCouple:
		return engine.PartyCouple
	case engine.PartyFamily:
		return engine.PartyFamily
	case engine.PartyFriends:
		return engine.PartyFriends
	default:
		return ""
	}
}

func parseSeason(s string) engine.Season {
	switch engine.Season(strings.ToLower(strings.TrimSpace(s))) {
	case engine.SeasonSpring:
		return engine.SeasonSpring
	case engine.SeasonSummer:
		return engine.SeasonSummer
	case engine.SeasonAutumn:
		return engine.SeasonAutumn
	case engine.SeasonWinter:
		return engine.SeasonWinter
	default:
		return ""
	}
}

// Pinger checks connectivity of one backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc that checks db and redis
// connectivity in parallel. A nil pinger is skipped (the redis rung is
// optional).
func HealthHandlerFunc(db, redis Pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "ok"
		redisStatus := "disabled"

		g, gCtx := errgroup.WithContext(ctx)
		if db != nil {
			g.Go(func() error {
				if err := db.Ping(gCtx); err != nil {
					log.Error("health check: db ping failed", "err", err)
					dbStatus = "error"
				}
				return nil
			})
		}
		if redis != nil {
			redisStatus = "ok"
			g.Go(func() error {
				if err := redis.Ping(gCtx); err != nil {
					log.Error("health check: redis ping failed", "err", err)
					redisStatus = "error"
				}
				return nil
			})
		}
		_ = g.Wait()

		status := http.StatusOK
		overall := "ok"
		if dbStatus == "error" || redisStatus == "error" {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}
