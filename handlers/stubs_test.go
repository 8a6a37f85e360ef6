package handlers

import (
	"context"
	"io"

	"github.com/vercel098/central-city-soccer/models"
	"github.com/vercel098/central-city-soccer/services"
	"github.com/vercel098/central-city-soccer/storage"
)

// Function-field stubs for the service interfaces. Tests set only the
// methods a handler is expected to call; the rest panic on use.

type stubAuthService struct {
	registerAdmin func(ctx context.Context, adminNumber, password string) (*models.Admin, error)
	loginAdmin    func(ctx context.Context, adminNumber, password string) error
	loginTeam     func(ctx context.Context, teamName, password string) (*models.Team, error)
	loginPlayer   func(ctx context.Context, playerID, password string) (*models.Player, error)
}

func (s *stubAuthService) RegisterAdmin(ctx context.Context, adminNumber, password string) (*models.Admin, error) {
	return s.registerAdmin(ctx, adminNumber, password)
}

func (s *stubAuthService) LoginAdmin(ctx context.Context, adminNumber, password string) error {
	return s.loginAdmin(ctx, adminNumber, password)
}

func (s *stubAuthService) LoginTeam(ctx context.Context, teamName, password string) (*models.Team, error) {
	return s.loginTeam(ctx, teamName, password)
}

func (s *stubAuthService) LoginPlayer(ctx context.Context, playerID, password string) (*models.Player, error) {
	return s.loginPlayer(ctx, playerID, password)
}

type stubTeamService struct {
	create         func(ctx context.Context, input services.CreateTeamInput) (*models.Team, error)
	getByID        func(ctx context.Context, id int) (*models.Team, error)
	getByName      func(ctx context.Context, name string) (*models.Team, error)
	getProfile     func(ctx context.Context, teamID int) (*models.Team, error)
	list           func(ctx context.Context) ([]models.Team, error)
	listSummaries  func(ctx context.Context) ([]models.TeamSummary, error)
	updateApproval func(ctx context.Context, id int, status models.ApprovalStatus) (*models.Team, error)
	update         func(ctx context.Context, id int, input services.UpdateTeamInput) (*models.Team, error)
	delete         func(ctx context.Context, id int) error
	countByStatus  func(ctx context.Context) (models.StatusCounts, error)
}

func (s *stubTeamService) Create(ctx context.Context, input services.CreateTeamInput) (*models.Team, error) {
	return s.create(ctx, input)
}

func (s *stubTeamService) GetByID(ctx context.Context, id int) (*models.Team, error) {
	return s.getByID(ctx, id)
}

func (s *stubTeamService) GetByName(ctx context.Context, name string) (*models.Team, error) {
	return s.getByName(ctx, name)
}

func (s *stubTeamService) GetProfile(ctx context.Context, teamID int) (*models.Team, error) {
	return s.getProfile(ctx, teamID)
}

func (s *stubTeamService) List(ctx context.Context) ([]models.Team, error) {
	return s.list(ctx)
}

func (s *stubTeamService) ListSummaries(ctx context.Context) ([]models.TeamSummary, error) {
	return s.listSummaries(ctx)
}

func (s *stubTeamService) UpdateApproval(ctx context.Context, id int, status models.ApprovalStatus) (*models.Team, error) {
	return s.updateApproval(ctx, id, status)
}

func (s *stubTeamService) Update(ctx context.Context, id int, input services.UpdateTeamInput) (*models.Team, error) {
	return s.update(ctx, id, input)
}

func (s *stubTeamService) Delete(ctx context.Context, id int) error {
	return s.delete(ctx, id)
}

func (s *stubTeamService) CountByStatus(ctx context.Context) (models.StatusCounts, error) {
	return s.countByStatus(ctx)
}

type stubPlayerService struct {
	register         func(ctx context.Context, input services.RegisterPlayerInput) (*models.Player, error)
	getByPlayerID    func(ctx context.Context, playerID string) (*models.Player, error)
	list             func(ctx context.Context) ([]models.Player, error)
	listForTeam      func(ctx context.Context, teamID int) ([]models.Player, error)
	updateOwnProfile func(ctx context.Context, playerID string, input services.UpdatePlayerProfileInput) (*models.Player, error)
	updateForTeam    func(ctx context.Context, playerID string, teamID int, input services.UpdatePlayerInput) (*models.Player, error)
	approveForTeam   func(ctx context.Context, playerID string, teamID int) (*models.Player, error)
	deleteForTeam    func(ctx context.Context, playerID string, teamID int) error
	updateByID       func(ctx context.Context, id int, input services.UpdatePlayerInput) (*models.Player, error)
	deleteByID       func(ctx context.Context, id int) error
	countByStatus    func(ctx context.Context) (models.StatusCounts, error)
	exportCSV        func(ctx context.Context, fields []string) ([]byte, error)
}

func (s *stubPlayerService) Register(ctx context.Context, input services.RegisterPlayerInput) (*models.Player, error) {
	return s.register(ctx, input)
}

func (s *stubPlayerService) GetByPlayerID(ctx context.Context, playerID string) (*models.Player, error) {
	return s.getByPlayerID(ctx, playerID)
}

func (s *stubPlayerService) List(ctx context.Context) ([]models.Player, error) {
	return s.list(ctx)
}

func (s *stubPlayerService) ListForTeam(ctx context.Context, teamID int) ([]models.Player, error) {
	return s.listForTeam(ctx, teamID)
}

func (s *stubPlayerService) UpdateOwnProfile(ctx context.Context, playerID string, input services.UpdatePlayerProfileInput) (*models.Player, error) {
	return s.updateOwnProfile(ctx, playerID, input)
}

func (s *stubPlayerService) UpdateForTeam(ctx context.Context, playerID string, teamID int, input services.UpdatePlayerInput) (*models.Player, error) {
	return s.updateForTeam(ctx, playerID, teamID, input)
}

func (s *stubPlayerService) ApproveForTeam(ctx context.Context, playerID string, teamID int) (*models.Player, error) {
	return s.approveForTeam(ctx, playerID, teamID)
}

func (s *stubPlayerService) DeleteForTeam(ctx context.Context, playerID string, teamID int) error {
	return s.deleteForTeam(ctx, playerID, teamID)
}

func (s *stubPlayerService) UpdateByID(ctx context.Context, id int, input services.UpdatePlayerInput) (*models.Player, error) {
	return s.updateByID(ctx, id, input)
}

func (s *stubPlayerService) DeleteByID(ctx context.Context, id int) error {
	return s.deleteByID(ctx, id)
}

func (s *stubPlayerService) CountByStatus(ctx context.Context) (models.StatusCounts, error) {
	return s.countByStatus(ctx)
}

func (s *stubPlayerService) ExportCSV(ctx context.Context, fields []string) ([]byte, error) {
	return s.exportCSV(ctx, fields)
}

type stubUploader struct {
	upload func(ctx context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error)
}

func (s *stubUploader) Upload(ctx context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	return s.upload(ctx, key, contentType, reader)
}

func (s *stubUploader) Delete(ctx context.Context, key string) error { return nil }

func (s *stubUploader) GetPublicURL(key string) string { return "https://example.com/" + key }

type stubNotifier struct {
	notifyApproval func(ctx context.Context, playerName, playerPhone, teamName, playerID string) error
}

func (s *stubNotifier) NotifyApproval(ctx context.Context, playerName, playerPhone, teamName, playerID string) error {
	return s.notifyApproval(ctx, playerName, playerPhone, teamName, playerID)
}
