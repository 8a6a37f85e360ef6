package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vercel098/central-city-soccer/middleware"
	"github.com/vercel098/central-city-soccer/models"
	"github.com/vercel098/central-city-soccer/services"
)

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(teamService services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// Register handles POST /teamregister.
func (h *TeamHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, team, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// List handles GET /teams: every team with roster, for the admin team list.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, teams, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListSummaries handles GET /teamsget: the public team directory projection.
func (h *TeamHandler) ListSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.teamService.ListSummaries(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, summaries, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByName handles GET /teamsget/{teamName}.
func (h *TeamHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "teamName")
	if name == "" {
		badRequestResponse(w, r, errors.New("missing teamName in URL path"))
		return
	}

	team, err := h.teamService.GetByName(r.Context(), name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, team, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByID handles GET /team/{id}.
func (h *TeamHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.GetByID(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, team, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateApproval handles PUT /teams/{id}: the admin approval toggle.
func (h *TeamHandler) UpdateApproval(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		ApprovalStatus models.ApprovalStatus `json:"approvalStatus"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.UpdateApproval(r.Context(), teamID, input.ApprovalStatus)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, team, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Edit handles PUT /teams/edit/{id}: the admin full edit.
func (h *TeamHandler) Edit(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.Update(r.Context(), teamID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, team, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Delete handles DELETE /teams/{id}.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.teamService.Delete(r.Context(), teamID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	messageResponse(w, http.StatusOK, "Team deleted successfully")
}

// Count handles GET /team/count.
func (h *TeamHandler) Count(w http.ResponseWriter, r *http.Request) {
	counts, err := h.teamService.CountByStatus(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, counts, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetProfile handles GET /getTeamProfile for the authenticated team.
func (h *TeamHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	teamID, err := middleware.GetTeamIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "Unauthorized")
		return
	}

	team, err := h.teamService.GetProfile(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	if err := writeJSON(w, http.StatusOK, jsonResponse{"team": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PatchProfile handles PATCH /getTeamProfile for the authenticated team.
func (h *TeamHandler) PatchProfile(w http.ResponseWriter, r *http.Request) {
	teamID, err := middleware.GetTeamIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "Unauthorized")
		return
	}

	var body struct {
		Updates services.UpdateTeamInput `json:"updates"`
	}
	if err := readJSON(w, r, &body); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.Update(r.Context(), teamID, body.Updates)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
