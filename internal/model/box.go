package model

import (
	"errors"
	"fmt"
	"strings"
)

// StatusAway marks a box that is checked out. Any other status is a location.
const StatusAway = "away"

// Box is a physical container identified by its size and number.
type Box struct {
	Size   string `json:"size"`
	Number int64  `json:"number"`
	Status string `json:"status"`
}

// IsAway reports whether the box is currently checked out.
func (b Box) IsAway() bool {
	return IsAway(b.Status)
}

// Label returns the printable "SIZE NUM" form used on QR labels.
func (b Box) Label() string {
	return fmt.Sprintf("%s %d", b.Size, b.Number)
}

// IsAway reports whether status is the checked-out sentinel.
func IsAway(status string) bool {
	return status == StatusAway
}

// Location validation errors.
var (
	ErrEmptyLocation = errors.New("location is required")
	ErrAwayLocation  = errors.New("location cannot be \"away\"")
)

// NormalizeLocation trims a check-in location and rejects values that would
// leave the box looking checked out.
func NormalizeLocation(location string) (string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", ErrEmptyLocation
	}
	if strings.EqualFold(location, StatusAway) {
		return "", ErrAwayLocation
	}
	return location, nil
}
