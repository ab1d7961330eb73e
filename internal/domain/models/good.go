package models

import "strings"

// GoodStatus is the lock state of a good. Only StatusLocked and StatusUnlocked exist.
type GoodStatus string

const (
	StatusLocked   GoodStatus = "locked"
	StatusUnlocked GoodStatus = "unlocked"
)

// Good is a catalog record.
type Good struct {
	ID     int64      `json:"id" yaml:"id"`
	Name   string     `json:"name" yaml:"name"`
	Status GoodStatus `json:"status" yaml:"status"`
}

// ParseGoodStatus lowercases s and reports whether it names a known status.
func ParseGoodStatus(s string) (GoodStatus, bool) {
	switch st := GoodStatus(strings.ToLower(s)); st {
	case StatusLocked, StatusUnlocked:
		return st, true
	default:
		return "", false
	}
}

// Inverse returns the status a toggle moves to.
func (s GoodStatus) Inverse() GoodStatus {
	if s == StatusLocked {
		return StatusUnlocked
	}
	return StatusLocked
}

// ToggleLabel is the action name shown next to a good with status s.
func (s GoodStatus) ToggleLabel() string {
	if s == StatusLocked {
		return "Unlock"
	}
	return "Lock"
}
