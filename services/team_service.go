package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vercel098/central-city-soccer/models"
	"github.com/vercel098/central-city-soccer/repositories"
	"github.com/vercel098/central-city-soccer/utils"
)

const minPasswordLength = 6

type CreateTeamInput struct {
	TeamName           string              `json:"teamName"`
	TeamCategory       models.TeamCategory `json:"teamCategory"`
	CoachName          string              `json:"coachName"`
	AssistantCoachName string              `json:"assistantCoachName"`
	TeamLogo           string              `json:"teamLogo"`
	MaxPlayers         int                 `json:"maxPlayers"`
	Password           string              `json:"password"`
}

// UpdateTeamInput is a partial update; nil fields stay untouched.
type UpdateTeamInput struct {
	TeamName           *string               `json:"teamName"`
	TeamCategory       *models.TeamCategory  `json:"teamCategory"`
	CoachName          *string               `json:"coachName"`
	AssistantCoachName *string               `json:"assistantCoachName"`
	TeamLogo           *string               `json:"teamLogo"`
	MaxPlayers         *int                  `json:"maxPlayers"`
	ApprovalStatus     *models.ApprovalStatus `json:"approvalStatus"`
}

type TeamService interface {
	Create(ctx context.Context, input CreateTeamInput) (*models.Team, error)
	GetByID(ctx context.Context, id int) (*models.Team, error)
	GetByName(ctx context.Context, name string) (*models.Team, error)
	GetProfile(ctx context.Context, teamID int) (*models.Team, error)
	List(ctx context.Context) ([]models.Team, error)
	ListSummaries(ctx context.Context) ([]models.TeamSummary, error)
	UpdateApproval(ctx context.Context, id int, status models.ApprovalStatus) (*models.Team, error)
	Update(ctx context.Context, id int, input UpdateTeamInput) (*models.Team, error)
	Delete(ctx context.Context, id int) error
	CountByStatus(ctx context.Context) (models.StatusCounts, error)
}

type teamService struct {
	teamRepo   repositories.TeamRepository
	playerRepo repositories.PlayerRepository
}

func NewTeamService(teamRepo repositories.TeamRepository, playerRepo repositories.PlayerRepository) TeamService {
	return &teamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *teamService) Create(ctx context.Context, input CreateTeamInput) (*models.Team, error) {
	if input.MaxPlayers <= 0 {
		return nil, ErrMaxPlayersRequired
	}
	if input.TeamName == "" || input.CoachName == "" || input.AssistantCoachName == "" {
		return nil, ErrValidationFailed
	}
	if !input.TeamCategory.Valid() {
		return nil, ErrInvalidCategory
	}
	if len(input.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	team := &models.Team{
		TeamName:           input.TeamName,
		TeamCategory:       input.TeamCategory,
		CoachName:          input.CoachName,
		AssistantCoachName: input.AssistantCoachName,
		TeamLogo:           input.TeamLogo,
		MaxPlayers:         input.MaxPlayers,
		PasswordHash:       hash,
		// Registration always starts Pending regardless of what the caller
		// sent.
		ApprovalStatus: models.StatusPending,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	team.PasswordHash = ""
	team.Players = make([]models.Player, 0)
	return team, nil
}

func (s *teamService) GetByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	if err := s.populateRoster(ctx, team); err != nil {
		return nil, err
	}
	team.PasswordHash = ""
	return team, nil
}

func (s *teamService) GetByName(ctx context.Context, name string) (*models.Team, error) {
	team, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	if err := s.populateRoster(ctx, team); err != nil {
		return nil, err
	}
	team.PasswordHash = ""
	return team, nil
}

// GetProfile returns the authenticated team's own record, without roster.
func (s *teamService) GetProfile(ctx context.Context, teamID int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	team.PasswordHash = ""
	return team, nil
}

func (s *teamService) List(ctx context.Context) ([]models.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		if err := s.populateRoster(ctx, &teams[i]); err != nil {
			return nil, err
		}
		teams[i].PasswordHash = ""
	}
	return teams, nil
}

func (s *teamService) ListSummaries(ctx context.Context) ([]models.TeamSummary, error) {
	return s.teamRepo.ListSummaries(ctx)
}

func (s *teamService) UpdateApproval(ctx context.Context, id int, status models.ApprovalStatus) (*models.Team, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.Update(ctx, id, UpdateTeamInput{ApprovalStatus: &status})
}

func (s *teamService) Update(ctx context.Context, id int, input UpdateTeamInput) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	if input.TeamName != nil {
		team.TeamName = *input.TeamName
	}
	if input.TeamCategory != nil {
		if !input.TeamCategory.Valid() {
			return nil, ErrInvalidCategory
		}
		team.TeamCategory = *input.TeamCategory
	}
	if input.CoachName != nil {
		team.CoachName = *input.CoachName
	}
	if input.AssistantCoachName != nil {
		team.AssistantCoachName = *input.AssistantCoachName
	}
	if input.TeamLogo != nil {
		team.TeamLogo = *input.TeamLogo
	}
	if input.MaxPlayers != nil {
		if *input.MaxPlayers <= 0 {
			return nil, ErrMaxPlayersRequired
		}
		team.MaxPlayers = *input.MaxPlayers
	}
	if input.ApprovalStatus != nil {
		if !input.ApprovalStatus.Valid() {
			return nil, ErrInvalidStatus
		}
		team.ApprovalStatus = *input.ApprovalStatus
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	team.PasswordHash = ""
	return team, nil
}

func (s *teamService) Delete(ctx context.Context, id int) error {
	err := s.teamRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrTeamNotFound) {
		return ErrTeamNotFound
	}
	return err
}

func (s *teamService) CountByStatus(ctx context.Context) (models.StatusCounts, error) {
	raw, err := s.teamRepo.CountByStatus(ctx)
	if err != nil {
		return models.StatusCounts{}, err
	}
	return models.StatusCounts{
		Pending:  raw[models.StatusPending],
		Approved: raw[models.StatusApproved],
	}, nil
}

func (s *teamService) populateRoster(ctx context.Context, team *models.Team) error {
	players, err := s.playerRepo.ListByTeamID(ctx, team.ID)
	if err != nil {
		return fmt.Errorf("failed to load roster for team %d: %w", team.ID, err)
	}
	team.Players = players
	return nil
}
