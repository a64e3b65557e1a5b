package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-tournament/services"
)

// ListPlayersHandler godoc
// @Summary      Registered players
// @Tags         players
// @Produce      json
// @Success      200  {object}  map[string][]models.Player
// @Router       /players [get]
func (h *TournamentHandler) ListPlayersHandler(w http.ResponseWriter, r *http.Request) {
	players, err := h.tournamentService.ListPlayers(r.Context())
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// GetPlayerHandler godoc
// @Summary      One player
// @Tags         players
// @Produce      json
// @Param        playerID  path  int  true  "Player ID"
// @Success      200  {object}  map[string]models.Player
// @Failure      404  {object}  map[string]string
// @Router       /players/{playerID} [get]
func (h *TournamentHandler) GetPlayerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "playerID")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	player, err := h.tournamentService.GetPlayer(r.Context(), id)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// CountPlayersHandler godoc
// @Summary      Number of registered players
// @Tags         players
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /players/count [get]
func (h *TournamentHandler) CountPlayersHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.tournamentService.CountPlayers(r.Context())
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"count": count}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// RegisterPlayerHandler godoc
// @Summary      Register a player
// @Description  Markup is stripped from the name. Empty names are rejected.
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        input  body  services.RegisterPlayerInput  true  "Player"
// @Success      201  {object}  map[string]models.Player
// @Failure      422  {object}  map[string]string
// @Router       /players [post]
func (h *TournamentHandler) RegisterPlayerHandler(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterPlayerInput
	if err := readJSON(w, r, &input); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	player, err := h.tournamentService.RegisterPlayer(r.Context(), input.Name)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"player": player}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeletePlayersHandler godoc
// @Summary      Delete all players and their matches
// @Tags         players
// @Success      204
// @Router       /players [delete]
func (h *TournamentHandler) DeletePlayersHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.DeletePlayers(r.Context()); err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
