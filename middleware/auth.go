package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// JWT claim names shared with the login handlers.
const (
	ClaimTeamID   = "team_id"
	ClaimTeamName = "team_name"
	ClaimPlayerID = "player_id"
)

// Authenticate verifies the Authorization bearer token and stores its claims
// in the request context. Every protected route goes through this one
// middleware; no handler parses tokens on its own.
func Authenticate(jwtSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "Unauthorized")
				return
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return jwtSecret, nil
			})
			if err != nil || !token.Valid {
				unauthorized(w, "Invalid or expired token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// GetTeamIDFromContext extracts the team id claim set by the team login.
func GetTeamIDFromContext(ctx context.Context) (int, error) {
	claims, ok := ctx.Value(claimsContextKey).(jwt.MapClaims)
	if !ok {
		return 0, errors.New("token claims not found in context")
	}

	claim, ok := claims[ClaimTeamID]
	if !ok {
		return 0, fmt.Errorf("missing %q claim in token", ClaimTeamID)
	}

	// JSON numbers decode as float64.
	teamIDFloat, ok := claim.(float64)
	if !ok {
		return 0, fmt.Errorf("invalid type for %q claim: expected number, got %T", ClaimTeamID, claim)
	}

	teamID := int(teamIDFloat)
	if teamID <= 0 {
		return 0, fmt.Errorf("invalid team ID value in %q claim: %d", ClaimTeamID, teamID)
	}
	return teamID, nil
}

// GetPlayerIDFromContext extracts the player id claim set by the player
// login.
func GetPlayerIDFromContext(ctx context.Context) (string, error) {
	claims, ok := ctx.Value(claimsContextKey).(jwt.MapClaims)
	if !ok {
		return "", errors.New("token claims not found in context")
	}

	claim, ok := claims[ClaimPlayerID]
	if !ok {
		return "", fmt.Errorf("missing %q claim in token", ClaimPlayerID)
	}

	playerID, ok := claim.(string)
	if !ok {
		return "", fmt.Errorf("invalid type for %q claim: expected string, got %T", ClaimPlayerID, claim)
	}
	if playerID == "" {
		return "", fmt.Errorf("empty %q claim in token", ClaimPlayerID)
	}
	return playerID, nil
}
