package models

type Admin struct {
	ID           int    `json:"id" db:"id"`
	AdminNumber  string `json:"adminNumber" db:"admin_number"`
	PasswordHash string `json:"-" db:"password_hash"`
}
