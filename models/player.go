package models

import "time"

type PlayerPosition string

const (
	PositionForward    PlayerPosition = "Forward"
	PositionMidfielder PlayerPosition = "Midfielder"
	PositionDefender   PlayerPosition = "Defender"
	PositionGoalkeeper PlayerPosition = "Goalkeeper"
)

func (p PlayerPosition) Valid() bool {
	switch p {
	case PositionForward, PositionMidfielder, PositionDefender, PositionGoalkeeper:
		return true
	}
	return false
}

type Documents struct {
	BirthCertificate  string `json:"birthCertificate,omitempty"`
	PassportSizePhoto string `json:"passportSizePhoto"`
}

type GuardianInfo struct {
	GuardianName          string `json:"guardianName"`
	GuardianContactNumber string `json:"guardianContactNumber"`
}

type Player struct {
	ID               int            `json:"id" db:"id"`
	PlayerID         string         `json:"playerId" db:"player_id"`
	FullName         string         `json:"fullName" db:"full_name"`
	DOB              time.Time      `json:"dob" db:"dob"`
	Type             TeamCategory   `json:"type" db:"type"`
	Nationality      string         `json:"nationality" db:"nationality"`
	ContactNumber    string         `json:"contactNumber" db:"contact_number"`
	Email            *string        `json:"email,omitempty" db:"email"`
	PasswordHash     string         `json:"-" db:"password_hash"`
	TeamID           int            `json:"teamAssignment" db:"team_id"`
	PlayerPosition   PlayerPosition `json:"playerPosition" db:"player_position"`
	Documents        Documents      `json:"documents" db:"-"`
	GuardianInfo     *GuardianInfo  `json:"guardianInfo,omitempty" db:"-"`
	RegistrationDate time.Time      `json:"registrationDate" db:"registration_date"`
	Status           ApprovalStatus `json:"status" db:"status"`

	Team *Team `json:"team,omitempty" db:"-"`
}

// Age reports full years between DOB and now, counting the birthday itself.
func (p *Player) Age(now time.Time) int {
	age := now.Year() - p.DOB.Year()
	if now.Month() < p.DOB.Month() ||
		(now.Month() == p.DOB.Month() && now.Day() < p.DOB.Day()) {
		age--
	}
	return age
}

// RequiresGuardian reports whether guardian info is mandatory for this
// player. The rule is carried over verbatim from the registration form:
// guardian details are required only when the date of birth is strictly in
// the future. A DOB equal to now does not require a guardian.
func (p *Player) RequiresGuardian(now time.Time) bool {
	return p.DOB.After(now)
}
