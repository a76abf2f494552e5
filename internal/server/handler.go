// Package server exposes routines, the agenda and the reward balance over a
// JSON HTTP API for companion dashboards.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rutinas-app/rutinas/internal/calendar"
	"github.com/rutinas-app/rutinas/internal/pictogram"
	"github.com/rutinas-app/rutinas/internal/routine"
	"github.com/rutinas-app/rutinas/internal/user"
)

type Handler struct {
	routines   routine.Repository
	users      user.Repository
	pictograms pictogram.Searcher
	names      calendar.DayNames
	language   pictogram.Language
	now        func() time.Time
}

func NewHandler(
	routines routine.Repository,
	users user.Repository,
	pictograms pictogram.Searcher,
	names calendar.DayNames,
	language pictogram.Language,
) *Handler {
	return &Handler{
		routines:   routines,
		users:      users,
		pictograms: pictograms,
		names:      names,
		language:   language,
		now:        time.Now,
	}
}

// Routes returns the route table for the API.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/user", h.GetUser)
	mux.HandleFunc("POST /api/user/spend", h.SpendCoins)
	mux.HandleFunc("GET /api/agenda", h.GetAgenda)
	mux.HandleFunc("GET /api/routines", h.ListRoutines)
	mux.HandleFunc("GET /api/routines/{id}", h.GetRoutine)
	mux.HandleFunc("POST /api/routines/{id}/complete", h.CompleteRoutine)
	mux.HandleFunc("GET /api/pictograms/search", h.SearchPictograms)
	return mux
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// UserResponse is the response for GET /api/user.
type UserResponse struct {
	ID                  uuid.UUID `json:"id"`
	CurrentStreak       int       `json:"current_streak"`
	LastStreakDate      *string   `json:"last_streak_date,omitempty"`
	CoinBalance         int       `json:"coin_balance"`
	PreferredFontDesign string    `json:"preferred_font_design"`
}

func newUserResponse(u *user.User) UserResponse {
	resp := UserResponse{
		ID:                  u.ID,
		CurrentStreak:       u.CurrentStreak,
		CoinBalance:         u.CoinBalance,
		PreferredFontDesign: string(u.PreferredFontDesign),
	}
	if u.LastStreakDate != nil {
		date := u.LastStreakDate.Format("2006-01-02")
		resp.LastStreakDate = &date
	}
	return resp
}

// GET /api/user
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Load(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Viewing the profile settles an expired streak.
	before := u.CurrentStreak
	user.ResetStreakIfLapsed(u, h.now())
	if u.CurrentStreak != before {
		if err := h.users.Save(r.Context(), u); err != nil {
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, newUserResponse(u))
}

// SpendRequest is the request body for POST /api/user/spend.
type SpendRequest struct {
	Amount int `json:"amount"`
}

// POST /api/user/spend
func (h *Handler) SpendCoins(w http.ResponseWriter, r *http.Request) {
	var req SpendRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.users.Load(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !u.CanSpend(req.Amount) {
		writeErr(w, http.StatusUnprocessableEntity, "insufficient coin balance")
		return
	}
	u.Spend(req.Amount)
	if err := h.users.Save(r.Context(), u); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newUserResponse(u))
}

// FlashcardResponse is one picture step of a routine.
type FlashcardResponse struct {
	ID       uuid.UUID `json:"id"`
	Index    int       `json:"index"`
	Text     string    `json:"text"`
	ImageURL string    `json:"image_url,omitempty"`
}

// RoutineResponse is the JSON shape of a routine.
type RoutineResponse struct {
	ID             uuid.UUID           `json:"id"`
	Title          string              `json:"title"`
	Weekdays       []calendar.Weekday  `json:"weekdays"`
	Repetition     string              `json:"repetition"`
	StartTime      string              `json:"start_time"`
	EndTime        string              `json:"end_time"`
	CoinReward     int                 `json:"coin_reward"`
	CoverImageURL  string              `json:"cover_image_url,omitempty"`
	CompletedToday bool                `json:"completed_today"`
	Flashcards     []FlashcardResponse `json:"flashcards"`
}

func (h *Handler) newRoutineResponse(r *routine.Routine) RoutineResponse {
	cards := r.SortedFlashcards()
	flashcards := make([]FlashcardResponse, 0, len(cards))
	for _, card := range cards {
		flashcards = append(flashcards, FlashcardResponse{
			ID:       card.ID,
			Index:    card.Index,
			Text:     card.Text,
			ImageURL: card.ImageURL,
		})
	}
	return RoutineResponse{
		ID:             r.ID,
		Title:          r.Title,
		Weekdays:       r.Weekdays,
		Repetition:     r.RepetitionDescription(h.names),
		StartTime:      r.StartTime.String(),
		EndTime:        r.EndTime().String(),
		CoinReward:     r.CoinReward,
		CoverImageURL:  r.CoverImageURL,
		CompletedToday: r.IsCompletedToday(h.now()),
		Flashcards:     flashcards,
	}
}

// GET /api/routines?title=&sort=
func (h *Handler) ListRoutines(w http.ResponseWriter, r *http.Request) {
	sortOrder := routine.SortByStartTime
	if r.URL.Query().Get("sort") == "title" {
		sortOrder = routine.SortByTitle
	}

	routines, err := h.routines.FindByTitle(r.Context(), r.URL.Query().Get("title"), sortOrder)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	responses := make([]RoutineResponse, 0, len(routines))
	for i := range routines {
		responses = append(responses, h.newRoutineResponse(&routines[i]))
	}
	writeJSON(w, http.StatusOK, responses)
}

// GET /api/routines/{id}
func (h *Handler) GetRoutine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid routine id")
		return
	}

	found, err := h.routines.FindByID(r.Context(), id)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if found == nil {
		writeErr(w, http.StatusNotFound, "routine not found")
		return
	}
	writeJSON(w, http.StatusOK, h.newRoutineResponse(found))
}

// AgendaResponse is the response for GET /api/agenda.
type AgendaResponse struct {
	Date     string            `json:"date"`
	User     UserResponse      `json:"user"`
	Routines []RoutineResponse `json:"routines"`
}

// GET /api/agenda?date=YYYY-MM-DD
func (h *Handler) GetAgenda(w http.ResponseWriter, r *http.Request) {
	date := h.now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	u, err := h.users.Load(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Viewing the agenda settles an expired streak.
	before := u.CurrentStreak
	user.ResetStreakIfLapsed(u, h.now())
	if u.CurrentStreak != before {
		if err := h.users.Save(r.Context(), u); err != nil {
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	routines, err := h.routines.FindAll(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	scheduled := routine.Agenda(routines, date)
	responses := make([]RoutineResponse, 0, len(scheduled))
	for i := range scheduled {
		responses = append(responses, h.newRoutineResponse(&scheduled[i]))
	}
	writeJSON(w, http.StatusOK, AgendaResponse{
		Date:     date.Format("2006-01-02"),
		User:     newUserResponse(u),
		Routines: responses,
	})
}

// CompleteResponse is the response for POST /api/routines/{id}/complete.
type CompleteResponse struct {
	Routine CompletedRoutine `json:"routine"`
	User    UserResponse     `json:"user"`
}

type CompletedRoutine struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	LastCompletionDate string    `json:"last_completion_date"`
	CoinReward         int       `json:"coin_reward"`
}

// POST /api/routines/{id}/complete
func (h *Handler) CompleteRoutine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid routine id")
		return
	}

	found, err := h.routines.FindByID(r.Context(), id)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if found == nil {
		writeErr(w, http.StatusNotFound, "routine not found")
		return
	}

	u, err := h.users.Load(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	now := h.now()
	user.ResetStreakIfLapsed(u, now)
	user.RecordCompletion(u, found, now)

	if err := h.routines.Update(r.Context(), found); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.users.Save(r.Context(), u); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, CompleteResponse{
		Routine: CompletedRoutine{
			ID:                 found.ID,
			Title:              found.Title,
			LastCompletionDate: found.LastCompletionDate.Format(time.RFC3339),
			CoinReward:         found.CoinReward,
		},
		User: newUserResponse(u),
	})
}

// PictogramResponse is one search hit for GET /api/pictograms/search.
type PictogramResponse struct {
	ID       int    `json:"id"`
	ImageURL string `json:"image_url"`
}

// GET /api/pictograms/search?query=&language=&mode=
//
// Search failures degrade to an empty list so an editing session keeps
// working when the catalog is unreachable.
func (h *Handler) SearchPictograms(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	language := h.language
	if raw := pictogram.Language(params.Get("language")); raw.IsValid() {
		language = raw
	}
	mode := pictogram.SearchModeStandard
	if raw := pictogram.SearchMode(params.Get("mode")); raw.IsValid() {
		mode = raw
	}

	results, err := h.pictograms.Search(r.Context(), language, params.Get("query"), mode)
	if err != nil {
		slog.Default().Warn("pictogram search failed",
			slog.String("query", params.Get("query")),
			slog.Any("error", err),
		)
	}

	responses := make([]PictogramResponse, 0, len(results))
	for _, p := range results {
		responses = append(responses, PictogramResponse{
			ID:       p.ID,
			ImageURL: p.URL(),
		})
	}
	writeJSON(w, http.StatusOK, responses)
}
