package services

import (
	"context"
	"sync"

	"github.com/vercel098/central-city-soccer/models"
	"github.com/vercel098/central-city-soccer/repositories"
)

// In-memory repository fakes used by the service tests.

type fakeAdminRepo struct {
	mu     sync.Mutex
	nextID int
	admins map[string]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Admin)}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.admins[admin.AdminNumber]; exists {
		return repositories.ErrAdminNumberConflict
	}
	r.nextID++
	admin.ID = r.nextID
	stored := *admin
	r.admins[admin.AdminNumber] = &stored
	return nil
}

func (r *fakeAdminRepo) GetByAdminNumber(_ context.Context, adminNumber string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[adminNumber]
	if !ok {
		return nil, repositories.ErrAdminNotFound
	}
	copied := *admin
	return &copied, nil
}

type fakeTeamRepo struct {
	mu     sync.Mutex
	nextID int
	teams  map[int]*models.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[int]*models.Team)}
}

func (r *fakeTeamRepo) Create(_ context.Context, team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.teams {
		if existing.TeamName == team.TeamName {
			return repositories.ErrTeamNameConflict
		}
	}
	r.nextID++
	team.ID = r.nextID
	stored := *team
	r.teams[team.ID] = &stored
	return nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	team, ok := r.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	copied := *team
	return &copied, nil
}

func (r *fakeTeamRepo) GetByName(_ context.Context, name string) (*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, team := range r.teams {
		if team.TeamName == name {
			copied := *team
			return &copied, nil
		}
	}
	return nil, repositories.ErrTeamNotFound
}

func (r *fakeTeamRepo) List(_ context.Context) ([]models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	teams := make([]models.Team, 0, len(r.teams))
	for id := 1; id <= r.nextID; id++ {
		if team, ok := r.teams[id]; ok {
			teams = append(teams, *team)
		}
	}
	return teams, nil
}

func (r *fakeTeamRepo) ListSummaries(_ context.Context) ([]models.TeamSummary, error) {
	teams, _ := r.List(context.Background())
	summaries := make([]models.TeamSummary, 0, len(teams))
	for _, team := range teams {
		summaries = append(summaries, models.TeamSummary{
			ID:           team.ID,
			TeamName:     team.TeamName,
			TeamCategory: team.TeamCategory,
			CoachName:    team.CoachName,
			TeamLogo:     team.TeamLogo,
		})
	}
	return summaries, nil
}

func (r *fakeTeamRepo) Update(_ context.Context, team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[team.ID]; !ok {
		return repositories.ErrTeamNotFound
	}
	for id, existing := range r.teams {
		if id != team.ID && existing.TeamName == team.TeamName {
			return repositories.ErrTeamNameConflict
		}
	}
	stored := *team
	r.teams[team.ID] = &stored
	return nil
}

func (r *fakeTeamRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[id]; !ok {
		return repositories.ErrTeamNotFound
	}
	delete(r.teams, id)
	return nil
}

func (r *fakeTeamRepo) CountByStatus(_ context.Context) (map[models.ApprovalStatus]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[models.ApprovalStatus]int)
	for _, team := range r.teams {
		counts[team.ApprovalStatus]++
	}
	return counts, nil
}

type fakePlayerRepo struct {
	mu      sync.Mutex
	nextID  int
	players map[int]*models.Player
	teams   *fakeTeamRepo
}

func newFakePlayerRepo(teams *fakeTeamRepo) *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[int]*models.Player), teams: teams}
}

func (r *fakePlayerRepo) CreateInTeam(_ context.Context, player *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	team, ok := r.teams.teams[player.TeamID]
	if !ok {
		return repositories.ErrTeamNotFound
	}

	rosterSize := 0
	for _, existing := range r.players {
		if existing.PlayerID == player.PlayerID {
			return repositories.ErrPlayerIDConflict
		}
		if existing.TeamID == player.TeamID {
			rosterSize++
		}
	}
	if rosterSize >= team.MaxPlayers {
		return repositories.ErrTeamCapacityReached
	}

	r.nextID++
	player.ID = r.nextID
	stored := *player
	r.players[player.ID] = &stored
	return nil
}

func (r *fakePlayerRepo) GetByID(_ context.Context, id int) (*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	player, ok := r.players[id]
	if !ok {
		return nil, repositories.ErrPlayerNotFound
	}
	copied := *player
	return &copied, nil
}

func (r *fakePlayerRepo) GetByPlayerID(_ context.Context, playerID string) (*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, player := range r.players {
		if player.PlayerID == playerID {
			copied := *player
			return &copied, nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (r *fakePlayerRepo) List(_ context.Context) ([]models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	players := make([]models.Player, 0, len(r.players))
	for id := 1; id <= r.nextID; id++ {
		if player, ok := r.players[id]; ok {
			players = append(players, *player)
		}
	}
	return players, nil
}

func (r *fakePlayerRepo) ListByTeamID(_ context.Context, teamID int) ([]models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	players := make([]models.Player, 0)
	for id := 1; id <= r.nextID; id++ {
		if player, ok := r.players[id]; ok && player.TeamID == teamID {
			players = append(players, *player)
		}
	}
	return players, nil
}

func (r *fakePlayerRepo) Update(_ context.Context, player *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[player.ID]; !ok {
		return repositories.ErrPlayerNotFound
	}
	stored := *player
	r.players[player.ID] = &stored
	return nil
}

func (r *fakePlayerRepo) UpdateForTeam(_ context.Context, player *models.Player, teamID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.players[player.ID]
	if !ok || existing.TeamID != teamID {
		return repositories.ErrPlayerNotFound
	}
	stored := *player
	r.players[player.ID] = &stored
	return nil
}

func (r *fakePlayerRepo) DeleteByID(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[id]; !ok {
		return repositories.ErrPlayerNotFound
	}
	delete(r.players, id)
	return nil
}

func (r *fakePlayerRepo) DeleteForTeam(_ context.Context, playerID string, teamID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, player := range r.players {
		if player.PlayerID == playerID && player.TeamID == teamID {
			delete(r.players, id)
			return nil
		}
	}
	return repositories.ErrPlayerNotFound
}

func (r *fakePlayerRepo) CountByStatus(_ context.Context) (map[models.ApprovalStatus]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[models.ApprovalStatus]int)
	for _, player := range r.players {
		counts[player.Status]++
	}
	return counts, nil
}

// recordingNotifier captures approval SMS calls instead of hitting Twilio.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []notifierCall
	err   error
}

type notifierCall struct {
	playerName  string
	playerPhone string
	teamName    string
	playerID    string
}

func (n *recordingNotifier) NotifyApproval(_ context.Context, playerName, playerPhone, teamName, playerID string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notifierCall{
		playerName:  playerName,
		playerPhone: playerPhone,
		teamName:    teamName,
		playerID:    playerID,
	})
	return n.err
}
