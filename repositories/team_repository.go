package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/vercel098/central-city-soccer/models"
)

var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameConflict = errors.New("team name conflict")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	GetByName(ctx context.Context, name string) (*models.Team, error)
	List(ctx context.Context) ([]models.Team, error)
	ListSummaries(ctx context.Context) ([]models.TeamSummary, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id int) error
	CountByStatus(ctx context.Context) (map[models.ApprovalStatus]int, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

const teamColumns = `id, team_name, team_category, coach_name, assistant_coach_name, team_logo, max_players, password_hash, approval_status, created_at, updated_at`

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (team_name, team_category, coach_name, assistant_coach_name, team_logo, max_players, password_hash, approval_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		team.TeamName,
		team.TeamCategory,
		team.CoachName,
		team.AssistantCoachName,
		team.TeamLogo,
		team.MaxPlayers,
		team.PasswordHash,
		team.ApprovalStatus,
	).Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" && pqErr.Constraint == "teams_team_name_key" {
				return ErrTeamNameConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`
	return r.scanTeam(ctx, query, id)
}

func (r *postgresTeamRepository) GetByName(ctx context.Context, name string) (*models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE team_name = $1`
	return r.scanTeam(ctx, query, name)
}

func (r *postgresTeamRepository) List(ctx context.Context) ([]models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY team_name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var team models.Team
		if scanErr := scanTeamRow(rows, &team); scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, team)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *postgresTeamRepository) ListSummaries(ctx context.Context) ([]models.TeamSummary, error) {
	query := `
		SELECT id, team_name, team_category, coach_name, team_logo
		FROM teams
		ORDER BY team_name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]models.TeamSummary, 0)
	for rows.Next() {
		var s models.TeamSummary
		if scanErr := rows.Scan(&s.ID, &s.TeamName, &s.TeamCategory, &s.CoachName, &s.TeamLogo); scanErr != nil {
			return nil, scanErr
		}
		summaries = append(summaries, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *postgresTeamRepository) Update(ctx context.Context, team *models.Team) error {
	query := `
		UPDATE teams SET
			team_name = $1,
			team_category = $2,
			coach_name = $3,
			assistant_coach_name = $4,
			team_logo = $5,
			max_players = $6,
			approval_status = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		team.TeamName,
		team.TeamCategory,
		team.CoachName,
		team.AssistantCoachName,
		team.TeamLogo,
		team.MaxPlayers,
		team.ApprovalStatus,
		team.ID,
	).Scan(&team.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTeamNotFound
		}
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" && pqErr.Constraint == "teams_team_name_key" {
				return ErrTeamNameConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresTeamRepository) Delete(ctx context.Context, id int) error {
	// Players reference teams with ON DELETE CASCADE, so the roster goes with
	// the team.
	query := `DELETE FROM teams WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, checkErr := checkRowsAffected(result)
	if checkErr != nil {
		return checkErr
	}
	if rowsAffected == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func (r *postgresTeamRepository) CountByStatus(ctx context.Context) (map[models.ApprovalStatus]int, error) {
	query := `
		SELECT approval_status, COUNT(*)
		FROM teams
		GROUP BY approval_status`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.ApprovalStatus]int)
	for rows.Next() {
		var status models.ApprovalStatus
		var count int
		if scanErr := rows.Scan(&status, &count); scanErr != nil {
			return nil, scanErr
		}
		counts[status] = count
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *postgresTeamRepository) scanTeam(ctx context.Context, query string, args ...interface{}) (*models.Team, error) {
	team := &models.Team{}
	row := r.db.QueryRowContext(ctx, query, args...)
	err := row.Scan(
		&team.ID,
		&team.TeamName,
		&team.TeamCategory,
		&team.CoachName,
		&team.AssistantCoachName,
		&team.TeamLogo,
		&team.MaxPlayers,
		&team.PasswordHash,
		&team.ApprovalStatus,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to scan team: %w", err)
	}
	return team, nil
}

func scanTeamRow(rows *sql.Rows, team *models.Team) error {
	return rows.Scan(
		&team.ID,
		&team.TeamName,
		&team.TeamCategory,
		&team.CoachName,
		&team.AssistantCoachName,
		&team.TeamLogo,
		&team.MaxPlayers,
		&team.PasswordHash,
		&team.ApprovalStatus,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
}
