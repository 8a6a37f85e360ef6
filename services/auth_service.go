package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vercel098/central-city-soccer/models"
	"github.com/vercel098/central-city-soccer/repositories"
	"github.com/vercel098/central-city-soccer/utils"
)

// AuthService covers the three principal kinds. Admin login deliberately
// issues no token; the admin dashboard talks to unauthenticated endpoints the
// same way the original frontend did.
type AuthService interface {
	RegisterAdmin(ctx context.Context, adminNumber, password string) (*models.Admin, error)
	LoginAdmin(ctx context.Context, adminNumber, password string) error
	LoginTeam(ctx context.Context, teamName, password string) (*models.Team, error)
	LoginPlayer(ctx context.Context, playerID, password string) (*models.Player, error)
}

type authService struct {
	adminRepo  repositories.AdminRepository
	teamRepo   repositories.TeamRepository
	playerRepo repositories.PlayerRepository
}

func NewAuthService(
	adminRepo repositories.AdminRepository,
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *authService) RegisterAdmin(ctx context.Context, adminNumber, password string) (*models.Admin, error) {
	if adminNumber == "" || password == "" {
		return nil, ErrValidationFailed
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		AdminNumber:  adminNumber,
		PasswordHash: hash,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repositories.ErrAdminNumberConflict) {
			return nil, ErrAdminNumberConflict
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}

func (s *authService) LoginAdmin(ctx context.Context, adminNumber, password string) error {
	admin, err := s.adminRepo.GetByAdminNumber(ctx, adminNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to find admin: %w", err)
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *authService) LoginTeam(ctx context.Context, teamName, password string) (*models.Team, error) {
	team, err := s.teamRepo.GetByName(ctx, teamName)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team by name: %w", err)
	}

	if !utils.CheckPasswordHash(password, team.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	team.PasswordHash = ""
	return team, nil
}

func (s *authService) LoginPlayer(ctx context.Context, playerID, password string) (*models.Player, error) {
	player, err := s.playerRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to find player: %w", err)
	}

	if !utils.CheckPasswordHash(password, player.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	player.PasswordHash = ""
	return player, nil
}
