package models

import "time"

type TeamCategory string

const (
	CategoryMens   TeamCategory = "Men's"
	CategoryYouths TeamCategory = "Youth's"
	CategoryWomens TeamCategory = "Women's"
)

func (c TeamCategory) Valid() bool {
	switch c {
	case CategoryMens, CategoryYouths, CategoryWomens:
		return true
	}
	return false
}

type Team struct {
	ID                 int            `json:"id" db:"id"`
	TeamName           string         `json:"teamName" db:"team_name"`
	TeamCategory       TeamCategory   `json:"teamCategory" db:"team_category"`
	CoachName          string         `json:"coachName" db:"coach_name"`
	AssistantCoachName string         `json:"assistantCoachName" db:"assistant_coach_name"`
	TeamLogo           string         `json:"teamLogo" db:"team_logo"`
	MaxPlayers         int            `json:"maxPlayers" db:"max_players"`
	PasswordHash       string         `json:"-" db:"password_hash"`
	ApprovalStatus     ApprovalStatus `json:"approvalStatus" db:"approval_status"`
	CreatedAt          time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time      `json:"updatedAt" db:"updated_at"`

	// Roster is derived from players.team_id, never stored on the team row.
	Players []Player `json:"players,omitempty" db:"-"`
}

// TeamSummary is the projection served by the public team directory.
type TeamSummary struct {
	ID           int          `json:"id"`
	TeamName     string       `json:"teamName"`
	TeamCategory TeamCategory `json:"teamCategory"`
	CoachName    string       `json:"coachName"`
	TeamLogo     string       `json:"teamLogo"`
}
