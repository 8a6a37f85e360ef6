package handlers

import (
	"errors"
	"net/http"

	"github.com/vercel098/central-city-soccer/services"
)

type SMSHandler struct {
	notifier services.ApprovalNotifier
}

func NewSMSHandler(notifier services.ApprovalNotifier) *SMSHandler {
	return &SMSHandler{notifier: notifier}
}

// SendPlayerApprovalSMS handles POST /sendPlayerApprovalSMS. Unlike the
// implicit SMS on approval, this endpoint surfaces delivery failures so the
// dashboard can retry manually.
func (h *SMSHandler) SendPlayerApprovalSMS(w http.ResponseWriter, r *http.Request) {
	var input struct {
		PlayerName  string `json:"playerName"`
		PlayerPhone string `json:"playerPhone"`
		TeamName    string `json:"teamName"`
		PlayerID    string `json:"playerId"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.PlayerName == "" || input.PlayerPhone == "" || input.PlayerID == "" {
		badRequestResponse(w, r, errors.New("playerName, playerPhone and playerId are required"))
		return
	}

	if err := h.notifier.NotifyApproval(r.Context(), input.PlayerName, input.PlayerPhone, input.TeamName, input.PlayerID); err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	messageResponse(w, http.StatusOK, "SMS sent successfully")
}
