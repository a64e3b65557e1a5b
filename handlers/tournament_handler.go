package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/swiss-tournament/services"
)

type TournamentHandler struct {
	responder
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService, logger *slog.Logger) *TournamentHandler {
	return &TournamentHandler{
		responder:         responder{logger: logger},
		tournamentService: ts,
	}
}

// HealthHandler godoc
// @Summary      Liveness and database check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *TournamentHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.Ping(r.Context()); err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": "ok"}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// StandingsHandler godoc
// @Summary      Current standings
// @Description  Players ordered by wins descending, ties by id ascending.
// @Tags         standings
// @Produce      json
// @Success      200  {object}  map[string][]models.Standing
// @Router       /standings [get]
func (h *TournamentHandler) StandingsHandler(w http.ResponseWriter, r *http.Request) {
	standings, err := h.tournamentService.PlayerStandings(r.Context())
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// PairingsHandler godoc
// @Summary      Swiss pairings for the next round
// @Description  Neighbours in the standings play each other. With an odd player count the lowest ranked player sits out.
// @Tags         standings
// @Produce      json
// @Success      200  {object}  map[string][]models.Pairing
// @Router       /pairings [get]
func (h *TournamentHandler) PairingsHandler(w http.ResponseWriter, r *http.Request) {
	pairings, err := h.tournamentService.SwissPairings(r.Context())
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"pairings": pairings}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// OverviewHandler godoc
// @Summary      Player count, standings, pairings and matches in one response
// @Tags         standings
// @Produce      json
// @Success      200  {object}  map[string]models.Overview
// @Router       /overview [get]
func (h *TournamentHandler) OverviewHandler(w http.ResponseWriter, r *http.Request) {
	overview, err := h.tournamentService.Overview(r.Context())
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"overview": overview}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
