package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/vercel098/central-city-soccer/middleware"
	"github.com/vercel098/central-city-soccer/services"
)

const (
	teamTokenTTL   = time.Hour
	playerTokenTTL = 7 * 24 * time.Hour
)

type AuthHandler struct {
	authService services.AuthService
	jwtSecret   []byte
}

func NewAuthHandler(authService services.AuthService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtSecret:   []byte(jwtSecret),
	}
}

// RegisterAdmin handles POST /register.
func (h *AuthHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		AdminNumber string `json:"adminNumber"`
		Password    string `json:"password"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.AdminNumber == "" || input.Password == "" {
		badRequestResponse(w, r, errors.New("admin number and password are required"))
		return
	}

	if _, err := h.authService.RegisterAdmin(r.Context(), input.AdminNumber, input.Password); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	messageResponse(w, http.StatusCreated, "Admin registered successfully")
}

// LoginAdmin handles POST /login. Admin sessions are message-only; no token
// is issued.
func (h *AuthHandler) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		AdminNumber string `json:"adminNumber"`
		Password    string `json:"password"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.authService.LoginAdmin(r.Context(), input.AdminNumber, input.Password); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Same message whether the number or the password was wrong.
			messageResponse(w, http.StatusBadRequest, "Invalid admin number or password")
			return
		}
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	messageResponse(w, http.StatusOK, "Login successful")
}

// LoginTeam handles POST /teamlogin.
func (h *AuthHandler) LoginTeam(w http.ResponseWriter, r *http.Request) {
	var input struct {
		TeamName string `json:"teamName"`
		Password string `json:"password"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.authService.LoginTeam(r.Context(), input.TeamName, input.Password)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		middleware.ClaimTeamID:   team.ID,
		middleware.ClaimTeamName: team.TeamName,
		"exp":                    now.Add(teamTokenTTL).Unix(),
		"iat":                    now.Unix(),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.jwtSecret)
	if err != nil {
		serverErrorResponse(w, r, fmt.Errorf("failed to sign token: %w", err))
		return
	}

	response := jsonResponse{
		"message": "Login successful",
		"token":   tokenString,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// LoginPlayer handles POST /playerlogin.
func (h *AuthHandler) LoginPlayer(w http.ResponseWriter, r *http.Request) {
	var input struct {
		PlayerID string `json:"playerId"`
		Password string `json:"password"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.authService.LoginPlayer(r.Context(), input.PlayerID, input.Password)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		middleware.ClaimPlayerID: player.PlayerID,
		"exp":                    now.Add(playerTokenTTL).Unix(),
		"iat":                    now.Unix(),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.jwtSecret)
	if err != nil {
		serverErrorResponse(w, r, fmt.Errorf("failed to sign token: %w", err))
		return
	}

	response := jsonResponse{
		"message": "Login successful",
		"token":   tokenString,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
