package services

import "errors"

// Shared service errors, mapped onto HTTP statuses in the handlers package.
var (
	// Validation and business rules
	ErrValidationFailed      = errors.New("validation failed")
	ErrMaxPlayersRequired    = errors.New("maxPlayers field is required and should be greater than 0")
	ErrPasswordTooShort      = errors.New("password is required and must be at least 6 characters long")
	ErrPassportPhotoRequired = errors.New("passport size photo is required")
	ErrGuardianInfoRequired  = errors.New("guardian name and contact number are required")
	ErrInvalidEmail          = errors.New("email address is not valid")
	ErrInvalidCategory       = errors.New("invalid team category")
	ErrInvalidPosition       = errors.New("invalid player position")
	ErrInvalidStatus         = errors.New("invalid approval status")
	ErrTeamCapacityReached   = errors.New("team has reached its player limit")

	// Conflicts
	ErrAdminNumberConflict = errors.New("admin number already exists")
	ErrTeamNameConflict    = errors.New("team with this name already exists")

	// Authentication and authorization
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotTeamMember      = errors.New("player does not belong to this team")

	// Entity lookups
	ErrTeamNotFound   = errors.New("team not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrAdminNotFound  = errors.New("admin not found")
)
