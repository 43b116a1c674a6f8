package models

import "time"

// UserSnapshot is the persisted snapshot of the last authenticated user.
// It lives under a single fixed key in the session store, is overwritten on
// every login, and is read back only to restore a session after restart.
type UserSnapshot struct {
	PersonnelID int64     `json:"personnel_id"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	Rank        string    `json:"rank"`
	Role        string    `json:"role"`
	LoginAt     time.Time `json:"login_at"`
}
