package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vercel098/central-city-soccer/models"
	"github.com/vercel098/central-city-soccer/repositories"
	"github.com/vercel098/central-city-soccer/utils"
)

// ApprovalNotifier delivers the approval SMS. Failures are logged, never
// surfaced to the caller.
type ApprovalNotifier interface {
	NotifyApproval(ctx context.Context, playerName, playerPhone, teamName, playerID string) error
}

type RegisterPlayerInput struct {
	PlayerID              string                `json:"playerId"`
	FullName              string                `json:"fullName"`
	DOB                   time.Time             `json:"dob"`
	Type                  models.TeamCategory   `json:"type"`
	Nationality           string                `json:"nationality"`
	ContactNumber         string                `json:"contactNumber"`
	Email                 *string               `json:"email"`
	Password              string                `json:"password"`
	TeamAssignment        int                   `json:"teamAssignment"`
	PlayerPosition        models.PlayerPosition `json:"playerPosition"`
	Documents             models.Documents      `json:"documents"`
	GuardianName          string                `json:"guardianName"`
	GuardianContactNumber string                `json:"guardianContactNumber"`
}

// UpdatePlayerProfileInput is the player self-service patch. Only fields
// present in the request body are applied; documents and guardian info are
// merged per subfield.
type UpdatePlayerProfileInput struct {
	FullName              *string `json:"fullName"`
	ContactNumber         *string `json:"contactNumber"`
	Nationality           *string `json:"nationality"`
	GuardianName          *string `json:"guardianName"`
	GuardianContactNumber *string `json:"guardianContactNumber"`
	BirthCertificate      *string `json:"birthCertificate"`
	PassportSizePhoto     *string `json:"passportSizePhoto"`
}

// UpdatePlayerInput is the wider patch available to the owning team and to
// admins.
type UpdatePlayerInput struct {
	FullName       *string                `json:"fullName"`
	DOB            *time.Time             `json:"dob"`
	Type           *models.TeamCategory   `json:"type"`
	Nationality    *string                `json:"nationality"`
	ContactNumber  *string                `json:"contactNumber"`
	Email          *string                `json:"email"`
	TeamAssignment *int                   `json:"teamAssignment"`
	PlayerPosition *models.PlayerPosition `json:"playerPosition"`
	Documents      *models.Documents      `json:"documents"`
	GuardianInfo   *models.GuardianInfo   `json:"guardianInfo"`
	Status         *models.ApprovalStatus `json:"status"`
}

type PlayerService interface {
	Register(ctx context.Context, input RegisterPlayerInput) (*models.Player, error)
	GetByPlayerID(ctx context.Context, playerID string) (*models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
	ListForTeam(ctx context.Context, teamID int) ([]models.Player, error)
	UpdateOwnProfile(ctx context.Context, playerID string, input UpdatePlayerProfileInput) (*models.Player, error)
	UpdateForTeam(ctx context.Context, playerID string, teamID int, input UpdatePlayerInput) (*models.Player, error)
	ApproveForTeam(ctx context.Context, playerID string, teamID int) (*models.Player, error)
	DeleteForTeam(ctx context.Context, playerID string, teamID int) error
	UpdateByID(ctx context.Context, id int, input UpdatePlayerInput) (*models.Player, error)
	DeleteByID(ctx context.Context, id int) error
	CountByStatus(ctx context.Context) (models.StatusCounts, error)
	ExportCSV(ctx context.Context, fields []string) ([]byte, error)
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	teamRepo   repositories.TeamRepository
	notifier   ApprovalNotifier
	logger     *slog.Logger
}

func NewPlayerService(
	playerRepo repositories.PlayerRepository,
	teamRepo repositories.TeamRepository,
	notifier ApprovalNotifier,
	logger *slog.Logger,
) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (s *playerService) Register(ctx context.Context, input RegisterPlayerInput) (*models.Player, error) {
	if input.Documents.PassportSizePhoto == "" {
		return nil, ErrPassportPhotoRequired
	}
	if input.FullName == "" || input.Nationality == "" || input.ContactNumber == "" || input.DOB.IsZero() {
		return nil, ErrValidationFailed
	}
	if !input.Type.Valid() {
		return nil, ErrInvalidCategory
	}
	if !input.PlayerPosition.Valid() {
		return nil, ErrInvalidPosition
	}
	if len(input.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if input.Email != nil && *input.Email != "" && !utils.IsValidEmail(*input.Email) {
		return nil, ErrInvalidEmail
	}

	player := &models.Player{
		PlayerID:       input.PlayerID,
		FullName:       input.FullName,
		DOB:            input.DOB,
		Type:           input.Type,
		Nationality:    input.Nationality,
		ContactNumber:  input.ContactNumber,
		Email:          input.Email,
		TeamID:         input.TeamAssignment,
		PlayerPosition: input.PlayerPosition,
		Documents:      input.Documents,
		Status:         models.StatusPending,
	}

	if input.GuardianName != "" && input.GuardianContactNumber != "" {
		player.GuardianInfo = &models.GuardianInfo{
			GuardianName:          input.GuardianName,
			GuardianContactNumber: input.GuardianContactNumber,
		}
	}
	if player.RequiresGuardian(time.Now()) && player.GuardianInfo == nil {
		return nil, ErrGuardianInfoRequired
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	player.PasswordHash = hash

	generated := player.PlayerID == ""
	if generated {
		player.PlayerID = generatePlayerID()
	}

	// A generated id can collide with an existing one; retry with a fresh id
	// a few times before giving up.
	for attempt := 0; ; attempt++ {
		err = s.playerRepo.CreateInTeam(ctx, player)
		if err == nil {
			break
		}
		if errors.Is(err, repositories.ErrPlayerIDConflict) && generated && attempt < 3 {
			player.PlayerID = generatePlayerID()
			continue
		}
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamCapacityReached):
			return nil, ErrTeamCapacityReached
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	player.PasswordHash = ""
	return player, nil
}

func (s *playerService) GetByPlayerID(ctx context.Context, playerID string) (*models.Player, error) {
	player, err := s.playerRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	player.PasswordHash = ""
	return player, nil
}

func (s *playerService) List(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range players {
		players[i].PasswordHash = ""
		if players[i].Team != nil {
			players[i].Team.PasswordHash = ""
		}
	}
	return players, nil
}

// ListForTeam returns the authenticated team's roster. An empty roster is an
// empty list, not an error.
func (s *playerService) ListForTeam(ctx context.Context, teamID int) ([]models.Player, error) {
	players, err := s.playerRepo.ListByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	for i := range players {
		players[i].PasswordHash = ""
	}
	return players, nil
}

func (s *playerService) UpdateOwnProfile(ctx context.Context, playerID string, input UpdatePlayerProfileInput) (*models.Player, error) {
	player, err := s.playerRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	if input.FullName != nil && *input.FullName != "" {
		player.FullName = *input.FullName
	}
	if input.ContactNumber != nil && *input.ContactNumber != "" {
		player.ContactNumber = *input.ContactNumber
	}
	if input.Nationality != nil && *input.Nationality != "" {
		player.Nationality = *input.Nationality
	}
	if input.BirthCertificate != nil && *input.BirthCertificate != "" {
		player.Documents.BirthCertificate = *input.BirthCertificate
	}
	if input.PassportSizePhoto != nil && *input.PassportSizePhoto != "" {
		player.Documents.PassportSizePhoto = *input.PassportSizePhoto
	}
	if input.GuardianName != nil || input.GuardianContactNumber != nil {
		if player.GuardianInfo == nil {
			player.GuardianInfo = &models.GuardianInfo{}
		}
		if input.GuardianName != nil && *input.GuardianName != "" {
			player.GuardianInfo.GuardianName = *input.GuardianName
		}
		if input.GuardianContactNumber != nil && *input.GuardianContactNumber != "" {
			player.GuardianInfo.GuardianContactNumber = *input.GuardianContactNumber
		}
	}

	if err := s.playerRepo.Update(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	player.PasswordHash = ""
	return player, nil
}

func (s *playerService) UpdateForTeam(ctx context.Context, playerID string, teamID int, input UpdatePlayerInput) (*models.Player, error) {
	player, err := s.authorizeTeamAccess(ctx, playerID, teamID)
	if err != nil {
		return nil, err
	}

	if err := applyPlayerPatch(player, input); err != nil {
		return nil, err
	}

	if err := s.playerRepo.UpdateForTeam(ctx, player, teamID); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	player.PasswordHash = ""
	return player, nil
}

func (s *playerService) ApproveForTeam(ctx context.Context, playerID string, teamID int) (*models.Player, error) {
	player, err := s.authorizeTeamAccess(ctx, playerID, teamID)
	if err != nil {
		return nil, err
	}

	player.Status = models.StatusApproved
	if err := s.playerRepo.UpdateForTeam(ctx, player, teamID); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to approve player: %w", err)
	}

	s.sendApprovalSMS(ctx, player)

	player.PasswordHash = ""
	return player, nil
}

func (s *playerService) DeleteForTeam(ctx context.Context, playerID string, teamID int) error {
	if _, err := s.authorizeTeamAccess(ctx, playerID, teamID); err != nil {
		return err
	}

	err := s.playerRepo.DeleteForTeam(ctx, playerID, teamID)
	if errors.Is(err, repositories.ErrPlayerNotFound) {
		return ErrPlayerNotFound
	}
	return err
}

func (s *playerService) UpdateByID(ctx context.Context, id int, input UpdatePlayerInput) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	if err := applyPlayerPatch(player, input); err != nil {
		return nil, err
	}

	if err := s.playerRepo.Update(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	player.PasswordHash = ""
	return player, nil
}

func (s *playerService) DeleteByID(ctx context.Context, id int) error {
	err := s.playerRepo.DeleteByID(ctx, id)
	if errors.Is(err, repositories.ErrPlayerNotFound) {
		return ErrPlayerNotFound
	}
	return err
}

func (s *playerService) CountByStatus(ctx context.Context) (models.StatusCounts, error) {
	raw, err := s.playerRepo.CountByStatus(ctx)
	if err != nil {
		return models.StatusCounts{}, err
	}
	return models.StatusCounts{
		Pending:  raw[models.StatusPending],
		Approved: raw[models.StatusApproved],
	}, nil
}

// authorizeTeamAccess is the single ownership check applied to every
// team-scoped player mutation: the caller's token team must match the
// player's team assignment.
func (s *playerService) authorizeTeamAccess(ctx context.Context, playerID string, teamID int) (*models.Player, error) {
	player, err := s.playerRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	if player.TeamID != teamID {
		return nil, ErrNotTeamMember
	}
	return player, nil
}

func (s *playerService) sendApprovalSMS(ctx context.Context, player *models.Player) {
	if s.notifier == nil {
		return
	}

	teamName := ""
	if team, err := s.teamRepo.GetByID(ctx, player.TeamID); err == nil {
		teamName = team.TeamName
	}

	if err := s.notifier.NotifyApproval(ctx, player.FullName, player.ContactNumber, teamName, player.PlayerID); err != nil {
		s.logger.Error("failed to send approval SMS",
			slog.String("player_id", player.PlayerID),
			slog.Any("error", err))
	}
}

func applyPlayerPatch(player *models.Player, input UpdatePlayerInput) error {
	if input.FullName != nil {
		player.FullName = *input.FullName
	}
	if input.DOB != nil {
		player.DOB = *input.DOB
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return ErrInvalidCategory
		}
		player.Type = *input.Type
	}
	if input.Nationality != nil {
		player.Nationality = *input.Nationality
	}
	if input.ContactNumber != nil {
		player.ContactNumber = *input.ContactNumber
	}
	if input.Email != nil {
		if *input.Email != "" && !utils.IsValidEmail(*input.Email) {
			return ErrInvalidEmail
		}
		player.Email = input.Email
	}
	if input.TeamAssignment != nil {
		player.TeamID = *input.TeamAssignment
	}
	if input.PlayerPosition != nil {
		if !input.PlayerPosition.Valid() {
			return ErrInvalidPosition
		}
		player.PlayerPosition = *input.PlayerPosition
	}
	if input.Documents != nil {
		if input.Documents.BirthCertificate != "" {
			player.Documents.BirthCertificate = input.Documents.BirthCertificate
		}
		if input.Documents.PassportSizePhoto != "" {
			player.Documents.PassportSizePhoto = input.Documents.PassportSizePhoto
		}
	}
	if input.GuardianInfo != nil {
		player.GuardianInfo = input.GuardianInfo
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return ErrInvalidStatus
		}
		player.Status = *input.Status
	}
	return nil
}
