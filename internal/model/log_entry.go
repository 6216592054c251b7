package model

import "time"

// LogEntry records one checkin or checkout.
type LogEntry struct {
	ID        int64     `json:"id"`
	Size      string    `json:"size"`
	Number    int64     `json:"number"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// Actor returns the user who made the move.
func (e LogEntry) Actor() User {
	return User{FirstName: e.FirstName, LastName: e.LastName}
}

// IsCheckout reports whether the entry moved the box away.
func (e LogEntry) IsCheckout() bool {
	return IsAway(e.Status)
}
