package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/vercel098/central-city-soccer/middleware"
	"github.com/vercel098/central-city-soccer/models"
	"github.com/vercel098/central-city-soccer/services"
)

func playerToken(t *testing.T, playerID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		middleware.ClaimPlayerID: playerID,
		"exp":                    time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestPlayerRegisterHandler(t *testing.T) {
	svc := &stubPlayerService{
		register: func(ctx context.Context, input services.RegisterPlayerInput) (*models.Player, error) {
			assert.Equal(t, "Alex Morgan", input.FullName)
			assert.Equal(t, 7, input.TeamAssignment)
			return &models.Player{ID: 1, PlayerID: "P000123", FullName: input.FullName, Status: models.StatusPending}, nil
		},
	}
	h := NewPlayerHandler(svc)

	body := `{
		"fullName": "Alex Morgan",
		"dob": "2000-03-15T00:00:00Z",
		"type": "Men's",
		"nationality": "Bangladeshi",
		"contactNumber": "01712345678",
		"password": "secret123",
		"teamAssignment": 7,
		"playerPosition": "Forward",
		"documents": {"passportSizePhoto": "https://example.com/photo.png"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/playerregister", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	decoded := decodeBody(t, rec)
	assert.Equal(t, "P000123", decoded["playerId"])
	assert.Equal(t, "Pending", decoded["status"])
}

func TestPlayerRegisterHandlerCapacityReached(t *testing.T) {
	svc := &stubPlayerService{
		register: func(ctx context.Context, input services.RegisterPlayerInput) (*models.Player, error) {
			return nil, services.ErrTeamCapacityReached
		},
	}
	h := NewPlayerHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/playerregister", strings.NewReader(`{"fullName":"Alex Morgan"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["message"], "limit")
}

func TestPlayerGetByPlayerIDHandler(t *testing.T) {
	svc := &stubPlayerService{
		getByPlayerID: func(ctx context.Context, playerID string) (*models.Player, error) {
			if playerID != "P000123" {
				return nil, services.ErrPlayerNotFound
			}
			return &models.Player{ID: 1, PlayerID: playerID, FullName: "Alex Morgan"}, nil
		},
	}

	router := chi.NewRouter()
	router.Get("/player/{playerId}", NewPlayerHandler(svc).GetByPlayerID)

	req := httptest.NewRequest(http.MethodGet, "/player/P000123", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "Alex Morgan", decodeBody(t, rec)["fullName"])

	req = httptest.NewRequest(http.MethodGet, "/player/P999999", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlayerExportCSVHandler(t *testing.T) {
	svc := &stubPlayerService{
		exportCSV: func(ctx context.Context, fields []string) ([]byte, error) {
			assert.Equal(t, []string{"playerId", "fullName"}, fields)
			return []byte("playerId,fullName\nP000123,Alex Morgan\n"), nil
		},
	}
	h := NewPlayerHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/players/export?fields=playerId,fullName", nil)
	rec := httptest.NewRecorder()
	h.ExportCSV(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "players.csv")
	assert.Contains(t, rec.Body.String(), "P000123")
}

func TestPlayerListForTeamHandler(t *testing.T) {
	svc := &stubPlayerService{
		listForTeam: func(ctx context.Context, teamID int) ([]models.Player, error) {
			assert.Equal(t, 7, teamID)
			return []models.Player{{
				PlayerID:         "P000123",
				FullName:         "Alex Morgan",
				DOB:              time.Date(2000, time.March, 15, 0, 0, 0, 0, time.UTC),
				RegistrationDate: time.Date(2026, time.January, 2, 10, 30, 0, 0, time.UTC),
				Status:           models.StatusPending,
			}}, nil
		},
	}

	router := chi.NewRouter()
	router.With(middleware.Authenticate([]byte(testJWTSecret))).
		Get("/getPlayersForTeam", NewPlayerHandler(svc).ListForTeam)

	req := httptest.NewRequest(http.MethodGet, "/getPlayersForTeam", nil)
	req.Header.Set("Authorization", "Bearer "+teamToken(t, 7, "Central City Eagles"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	players, ok := decodeBody(t, rec)["players"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, players, 1)

	entry, ok := players[0].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Alex Morgan", entry["fullName"])
	// The roster serves short date strings, not RFC3339 timestamps.
	assert.Equal(t, "3/15/2000", entry["dob"])
	assert.Equal(t, "1/2/2026", entry["registrationDate"])
}

func TestPlayerListForTeamHandlerEmptyRoster(t *testing.T) {
	svc := &stubPlayerService{
		listForTeam: func(ctx context.Context, teamID int) ([]models.Player, error) {
			return []models.Player{}, nil
		},
	}

	router := chi.NewRouter()
	router.With(middleware.Authenticate([]byte(testJWTSecret))).
		Get("/getPlayersForTeam", NewPlayerHandler(svc).ListForTeam)

	req := httptest.NewRequest(http.MethodGet, "/getPlayersForTeam", nil)
	req.Header.Set("Authorization", "Bearer "+teamToken(t, 7, "Central City Eagles"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	players, ok := decodeBody(t, rec)["players"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, players, 0)
}

func TestPlayerApproveHandler(t *testing.T) {
	svc := &stubPlayerService{
		approveForTeam: func(ctx context.Context, playerID string, teamID int) (*models.Player, error) {
			assert.Equal(t, "P000123", playerID)
			assert.Equal(t, 7, teamID)
			return &models.Player{PlayerID: playerID, Status: models.StatusApproved}, nil
		},
	}

	router := chi.NewRouter()
	router.With(middleware.Authenticate([]byte(testJWTSecret))).
		Patch("/approvePlayer/{playerId}", NewPlayerHandler(svc).Approve)

	req := httptest.NewRequest(http.MethodPatch, "/approvePlayer/P000123", nil)
	req.Header.Set("Authorization", "Bearer "+teamToken(t, 7, "Central City Eagles"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	player, ok := decodeBody(t, rec)["player"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Approved", player["status"])
}

func TestPlayerApproveHandlerWrongTeam(t *testing.T) {
	svc := &stubPlayerService{
		approveForTeam: func(ctx context.Context, playerID string, teamID int) (*models.Player, error) {
			return nil, services.ErrNotTeamMember
		},
	}

	router := chi.NewRouter()
	router.With(middleware.Authenticate([]byte(testJWTSecret))).
		Patch("/approvePlayer/{playerId}", NewPlayerHandler(svc).Approve)

	req := httptest.NewRequest(http.MethodPatch, "/approvePlayer/P000123", nil)
	req.Header.Set("Authorization", "Bearer "+teamToken(t, 9, "Keystone United"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPlayerPatchForTeamHandlerRequiresPlayerID(t *testing.T) {
	router := chi.NewRouter()
	router.With(middleware.Authenticate([]byte(testJWTSecret))).
		Patch("/getPlayersForTeam", NewPlayerHandler(&stubPlayerService{}).PatchForTeam)

	req := httptest.NewRequest(http.MethodPatch, "/getPlayersForTeam", strings.NewReader(`{"updates":{}}`))
	req.Header.Set("Authorization", "Bearer "+teamToken(t, 7, "Central City Eagles"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlayerProfileHandler(t *testing.T) {
	svc := &stubPlayerService{
		getByPlayerID: func(ctx context.Context, playerID string) (*models.Player, error) {
			assert.Equal(t, "P000123", playerID)
			return &models.Player{PlayerID: playerID, FullName: "Alex Morgan"}, nil
		},
	}

	router := chi.NewRouter()
	router.With(middleware.Authenticate([]byte(testJWTSecret))).
		Get("/playerprofile", NewPlayerHandler(svc).Profile)

	req := httptest.NewRequest(http.MethodGet, "/playerprofile", nil)
	req.Header.Set("Authorization", "Bearer "+playerToken(t, "P000123"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alex Morgan", decodeBody(t, rec)["fullName"])
}
