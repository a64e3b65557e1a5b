package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-tournament/services"
)

// ListMatchesHandler godoc
// @Summary      Reported matches
// @Tags         matches
// @Produce      json
// @Success      200  {object}  map[string][]models.Match
// @Router       /matches [get]
func (h *TournamentHandler) ListMatchesHandler(w http.ResponseWriter, r *http.Request) {
	matches, err := h.tournamentService.ListMatches(r.Context())
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ReportMatchHandler godoc
// @Summary      Report a match result
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        input  body  services.ReportMatchInput  true  "Result"
// @Success      201  {object}  map[string]models.Match
// @Failure      422  {object}  map[string]string
// @Router       /matches [post]
func (h *TournamentHandler) ReportMatchHandler(w http.ResponseWriter, r *http.Request) {
	var input services.ReportMatchInput
	if err := readJSON(w, r, &input); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	match, err := h.tournamentService.ReportMatch(r.Context(), input.WinnerID, input.LoserID)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteMatchesHandler godoc
// @Summary      Delete all matches
// @Tags         matches
// @Success      204
// @Router       /matches [delete]
func (h *TournamentHandler) DeleteMatchesHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.DeleteMatches(r.Context()); err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
