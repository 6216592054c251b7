package model

import "strings"

// User is an operator allowed to move boxes. The name pair is the identity.
type User struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName returns "First Last".
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
