package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vercel098/central-city-soccer/middleware"
	"github.com/vercel098/central-city-soccer/models"
	"github.com/vercel098/central-city-soccer/services"
)

type PlayerHandler struct {
	playerService services.PlayerService
}

func NewPlayerHandler(playerService services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// Register handles POST /playerregister.
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterPlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.Register(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, player, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByPlayerID handles GET /player/{playerId}: the public ID-card lookup.
func (h *PlayerHandler) GetByPlayerID(w http.ResponseWriter, r *http.Request) {
	playerID, err := getPlayerIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.GetByPlayerID(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	if err := writeJSON(w, http.StatusOK, player, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// List handles GET /players: every player with team populated, for the admin
// player list.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, players, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateByID handles PUT /players/{id}: the admin edit by internal id.
func (h *PlayerHandler) UpdateByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdatePlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.UpdateByID(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, player, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteByID handles DELETE /players/{id}.
func (h *PlayerHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.playerService.DeleteByID(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	messageResponse(w, http.StatusOK, "Player deleted successfully")
}

// Count handles GET /player/count.
func (h *PlayerHandler) Count(w http.ResponseWriter, r *http.Request) {
	counts, err := h.playerService.CountByStatus(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, counts, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportCSV handles GET /players/export?fields=playerId,fullName,...
func (h *PlayerHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var fields []string
	if raw := r.URL.Query().Get("fields"); raw != "" {
		fields = strings.Split(raw, ",")
	}

	data, err := h.playerService.ExportCSV(r.Context(), fields)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="players.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Profile handles GET /playerprofile for the authenticated player.
func (h *PlayerHandler) Profile(w http.ResponseWriter, r *http.Request) {
	playerID, err := middleware.GetPlayerIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "Unauthorized")
		return
	}

	player, err := h.playerService.GetByPlayerID(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, player, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateOwnProfile handles PUT /playerupdate for the authenticated player.
func (h *PlayerHandler) UpdateOwnProfile(w http.ResponseWriter, r *http.Request) {
	playerID, err := middleware.GetPlayerIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "Unauthorized")
		return
	}

	var input services.UpdatePlayerProfileInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.UpdateOwnProfile(r.Context(), playerID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, player, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// rosterDateFormat is the short date layout the team dashboard renders,
// e.g. "3/15/2000".
const rosterDateFormat = "1/2/2006"

// rosterEntry is the roster projection served to the team dashboard. The
// date fields go out as short date strings instead of RFC3339 timestamps.
type rosterEntry struct {
	models.Player
	DOB              string `json:"dob"`
	RegistrationDate string `json:"registrationDate"`
}

func newRosterEntry(player models.Player) rosterEntry {
	return rosterEntry{
		Player:           player,
		DOB:              player.DOB.Format(rosterDateFormat),
		RegistrationDate: player.RegistrationDate.Format(rosterDateFormat),
	}
}

// ListForTeam handles GET /getPlayersForTeam for the authenticated team.
func (h *PlayerHandler) ListForTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := middleware.GetTeamIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "Unauthorized")
		return
	}

	players, err := h.playerService.ListForTeam(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	roster := make([]rosterEntry, 0, len(players))
	for _, player := range players {
		roster = append(roster, newRosterEntry(player))
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": roster}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PatchForTeam handles PATCH /getPlayersForTeam. The target player comes
// from the request body.
func (h *PlayerHandler) PatchForTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := middleware.GetTeamIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "Unauthorized")
		return
	}

	var body struct {
		PlayerID string                     `json:"playerId"`
		Updates  services.UpdatePlayerInput `json:"updates"`
	}
	if err := readJSON(w, r, &body); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if body.PlayerID == "" {
		badRequestResponse(w, r, errors.New("playerId is required"))
		return
	}

	player, err := h.playerService.UpdateForTeam(r.Context(), body.PlayerID, teamID, body.Updates)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PatchForTeamByID handles PATCH /getPlayersForTeam/{playerId}.
func (h *PlayerHandler) PatchForTeamByID(w http.ResponseWriter, r *http.Request) {
	teamID, err := middleware.GetTeamIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "Unauthorized")
		return
	}

	playerID, err := getPlayerIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var body struct {
		Updates services.UpdatePlayerInput `json:"updates"`
	}
	if err := readJSON(w, r, &body); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.UpdateForTeam(r.Context(), playerID, teamID, body.Updates)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Approve handles PATCH /approvePlayer/{playerId}: the owning team approves
// a pending player. The approval SMS is sent best-effort by the service.
func (h *PlayerHandler) Approve(w http.ResponseWriter, r *http.Request) {
	teamID, err := middleware.GetTeamIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "Unauthorized")
		return
	}

	playerID, err := getPlayerIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.ApproveForTeam(r.Context(), playerID, teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteForTeam handles DELETE /approvePlayer/{playerId}.
func (h *PlayerHandler) DeleteForTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := middleware.GetTeamIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "Unauthorized")
		return
	}

	playerID, err := getPlayerIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.playerService.DeleteForTeam(r.Context(), playerID, teamID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	messageResponse(w, http.StatusOK, "Player deleted successfully")
}
