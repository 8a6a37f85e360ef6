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
	ErrPlayerNotFound      = errors.New("player not found")
	ErrPlayerIDConflict    = errors.New("player id conflict")
	ErrTeamCapacityReached = errors.New("team has reached its player limit")
)

type PlayerRepository interface {
	// CreateInTeam inserts the player and performs the roster capacity check
	// in a single transaction. The team row is locked for the duration, so
	// two concurrent registrations cannot both pass the check.
	CreateInTeam(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	GetByPlayerID(ctx context.Context, playerID string) (*models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
	ListByTeamID(ctx context.Context, teamID int) ([]models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	// UpdateForTeam applies the update only when the player belongs to
	// teamID; ErrPlayerNotFound otherwise.
	UpdateForTeam(ctx context.Context, player *models.Player, teamID int) error
	DeleteByID(ctx context.Context, id int) error
	DeleteForTeam(ctx context.Context, playerID string, teamID int) error
	CountByStatus(ctx context.Context) (map[models.ApprovalStatus]int, error)
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

const playerColumns = `id, player_id, full_name, dob, type, nationality, contact_number, email, password_hash, team_id, player_position, birth_certificate, passport_photo, guardian_name, guardian_contact_number, registration_date, status`

func (r *postgresPlayerRepository) CreateInTeam(ctx context.Context, player *models.Player) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var maxPlayers int
	err = tx.QueryRowContext(ctx,
		`SELECT max_players FROM teams WHERE id = $1 FOR UPDATE`,
		player.TeamID,
	).Scan(&maxPlayers)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to lock team row: %w", err)
	}

	var rosterSize int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM players WHERE team_id = $1`,
		player.TeamID,
	).Scan(&rosterSize)
	if err != nil {
		return fmt.Errorf("failed to count roster: %w", err)
	}
	if rosterSize >= maxPlayers {
		return ErrTeamCapacityReached
	}

	query := `
		INSERT INTO players (player_id, full_name, dob, type, nationality, contact_number, email, password_hash, team_id, player_position, birth_certificate, passport_photo, guardian_name, guardian_contact_number, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, registration_date`

	var guardianName, guardianContact *string
	if player.GuardianInfo != nil {
		guardianName = &player.GuardianInfo.GuardianName
		guardianContact = &player.GuardianInfo.GuardianContactNumber
	}

	err = tx.QueryRowContext(ctx, query,
		player.PlayerID,
		player.FullName,
		player.DOB,
		player.Type,
		player.Nationality,
		player.ContactNumber,
		player.Email,
		player.PasswordHash,
		player.TeamID,
		player.PlayerPosition,
		player.Documents.BirthCertificate,
		player.Documents.PassportSizePhoto,
		guardianName,
		guardianContact,
		player.Status,
	).Scan(&player.ID, &player.RegistrationDate)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" && pqErr.Constraint == "players_player_id_key" {
				return ErrPlayerIDConflict
			}
		}
		return err
	}

	return tx.Commit()
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`
	return r.scanPlayer(ctx, query, id)
}

func (r *postgresPlayerRepository) GetByPlayerID(ctx context.Context, playerID string) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1`
	return r.scanPlayer(ctx, query, playerID)
}

// List returns every player with the owning team attached, for the admin
// list view.
func (r *postgresPlayerRepository) List(ctx context.Context) ([]models.Player, error) {
	query := `
		SELECT
			p.id, p.player_id, p.full_name, p.dob, p.type, p.nationality, p.contact_number, p.email, p.password_hash, p.team_id, p.player_position, p.birth_certificate, p.passport_photo, p.guardian_name, p.guardian_contact_number, p.registration_date, p.status,
			t.id, t.team_name, t.team_category, t.coach_name, t.assistant_coach_name, t.team_logo, t.max_players, t.approval_status, t.created_at, t.updated_at
		FROM players p
		JOIN teams t ON p.team_id = t.id
		ORDER BY p.registration_date ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var player models.Player
		var team models.Team
		var email, guardianName, guardianContact sql.NullString

		scanErr := rows.Scan(
			&player.ID,
			&player.PlayerID,
			&player.FullName,
			&player.DOB,
			&player.Type,
			&player.Nationality,
			&player.ContactNumber,
			&email,
			&player.PasswordHash,
			&player.TeamID,
			&player.PlayerPosition,
			&player.Documents.BirthCertificate,
			&player.Documents.PassportSizePhoto,
			&guardianName,
			&guardianContact,
			&player.RegistrationDate,
			&player.Status,
			&team.ID,
			&team.TeamName,
			&team.TeamCategory,
			&team.CoachName,
			&team.AssistantCoachName,
			&team.TeamLogo,
			&team.MaxPlayers,
			&team.ApprovalStatus,
			&team.CreatedAt,
			&team.UpdatedAt,
		)
		if scanErr != nil {
			return nil, scanErr
		}

		applyNullableFields(&player, email, guardianName, guardianContact)
		player.Team = &team
		players = append(players, player)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) ListByTeamID(ctx context.Context, teamID int) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE team_id = $1 ORDER BY registration_date ASC`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var player models.Player
		var email, guardianName, guardianContact sql.NullString
		if scanErr := scanPlayerRow(rows, &player, &email, &guardianName, &guardianContact); scanErr != nil {
			return nil, scanErr
		}
		applyNullableFields(&player, email, guardianName, guardianContact)
		players = append(players, player)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	return r.update(ctx, player, 0)
}

func (r *postgresPlayerRepository) UpdateForTeam(ctx context.Context, player *models.Player, teamID int) error {
	return r.update(ctx, player, teamID)
}

func (r *postgresPlayerRepository) update(ctx context.Context, player *models.Player, teamID int) error {
	query := `
		UPDATE players SET
			full_name = $1,
			dob = $2,
			type = $3,
			nationality = $4,
			contact_number = $5,
			email = $6,
			team_id = $7,
			player_position = $8,
			birth_certificate = $9,
			passport_photo = $10,
			guardian_name = $11,
			guardian_contact_number = $12,
			status = $13
		WHERE id = $14 AND ($15 = 0 OR team_id = $15)`

	var guardianName, guardianContact *string
	if player.GuardianInfo != nil {
		guardianName = &player.GuardianInfo.GuardianName
		guardianContact = &player.GuardianInfo.GuardianContactNumber
	}

	result, err := r.db.ExecContext(ctx, query,
		player.FullName,
		player.DOB,
		player.Type,
		player.Nationality,
		player.ContactNumber,
		player.Email,
		player.TeamID,
		player.PlayerPosition,
		player.Documents.BirthCertificate,
		player.Documents.PassportSizePhoto,
		guardianName,
		guardianContact,
		player.Status,
		player.ID,
		teamID,
	)
	if err != nil {
		return err
	}

	rowsAffected, checkErr := checkRowsAffected(result)
	if checkErr != nil {
		return checkErr
	}
	if rowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (r *postgresPlayerRepository) DeleteByID(ctx context.Context, id int) error {
	query := `DELETE FROM players WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, checkErr := checkRowsAffected(result)
	if checkErr != nil {
		return checkErr
	}
	if rowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (r *postgresPlayerRepository) DeleteForTeam(ctx context.Context, playerID string, teamID int) error {
	query := `DELETE FROM players WHERE player_id = $1 AND team_id = $2`
	result, err := r.db.ExecContext(ctx, query, playerID, teamID)
	if err != nil {
		return err
	}

	rowsAffected, checkErr := checkRowsAffected(result)
	if checkErr != nil {
		return checkErr
	}
	if rowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (r *postgresPlayerRepository) CountByStatus(ctx context.Context) (map[models.ApprovalStatus]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM players
		GROUP BY status`

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

func (r *postgresPlayerRepository) scanPlayer(ctx context.Context, query string, args ...interface{}) (*models.Player, error) {
	player := &models.Player{}
	var email, guardianName, guardianContact sql.NullString

	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&player.ID,
		&player.PlayerID,
		&player.FullName,
		&player.DOB,
		&player.Type,
		&player.Nationality,
		&player.ContactNumber,
		&email,
		&player.PasswordHash,
		&player.TeamID,
		&player.PlayerPosition,
		&player.Documents.BirthCertificate,
		&player.Documents.PassportSizePhoto,
		&guardianName,
		&guardianContact,
		&player.RegistrationDate,
		&player.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	applyNullableFields(player, email, guardianName, guardianContact)
	return player, nil
}

func scanPlayerRow(rows *sql.Rows, player *models.Player, email, guardianName, guardianContact *sql.NullString) error {
	return rows.Scan(
		&player.ID,
		&player.PlayerID,
		&player.FullName,
		&player.DOB,
		&player.Type,
		&player.Nationality,
		&player.ContactNumber,
		email,
		&player.PasswordHash,
		&player.TeamID,
		&player.PlayerPosition,
		&player.Documents.BirthCertificate,
		&player.Documents.PassportSizePhoto,
		guardianName,
		guardianContact,
		&player.RegistrationDate,
		&player.Status,
	)
}

func applyNullableFields(player *models.Player, email, guardianName, guardianContact sql.NullString) {
	if email.Valid {
		player.Email = &email.String
	}
	if guardianName.Valid || guardianContact.Valid {
		player.GuardianInfo = &models.GuardianInfo{
			GuardianName:          guardianName.String,
			GuardianContactNumber: guardianContact.String,
		}
	}
}
