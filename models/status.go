package models

// ApprovalStatus is shared by teams and players. Records start as Pending and
// are switched to Approved by an explicit admin or team action; the admin team
// list can toggle in both directions.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "Pending"
	StatusApproved ApprovalStatus = "Approved"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved:
		return true
	}
	return false
}

// StatusCounts is the fixed-shape dashboard summary. Statuses with no rows
// stay at zero.
type StatusCounts struct {
	Pending  int `json:"Pending"`
	Approved int `json:"Approved"`
}
