// /home/eplanet/go/src/github.com/eplanet/reminder/objects/reminder.go
// -*- mode: go; coding: utf-8; -*-
// Created on 24. 08. 2026
// Time-stamp: <2026-08-31 18:02:33>

package objects

import (
	"fmt"
	"time"
)

//go:generate ffjson reminder.go

// ReminderItem is ... a reminder. The fields are declared in the order
// their keys appear in the persisted document.
// Fired and Archived only ever transition from false to true; an edit
// through the store resets Fired as part of re-activation.
type ReminderItem struct {
	Archived bool      `json:"archived,omitempty"`
	FireDate time.Time `json:"fireDate"`
	Fired    bool      `json:"fired"`
	ID       string    `json:"id"`
	Note     string    `json:"note"`
}

// Due returns the ReminderItem's fire time.
func (r *ReminderItem) Due() time.Time {
	return r.FireDate
} // func (r *ReminderItem) Due() time.Time

// IsDue returns true if the ReminderItem's fire time has passed.
func (r *ReminderItem) IsDue() bool {
	return !r.FireDate.After(time.Now())
} // func (r *ReminderItem) IsDue() bool

// IsPending returns true if the ReminderItem has neither fired nor
// been archived.
func (r *ReminderItem) IsPending() bool {
	return !r.Fired && !r.Archived
} // func (r *ReminderItem) IsPending() bool

// Payload returns the title and body to display when the ReminderItem fires.
func (r *ReminderItem) Payload() (string, string) {
	return "Reminder", r.Note
} // func (r *ReminderItem) Payload() (string, string)

func (r *ReminderItem) String() string {
	return fmt.Sprintf("ReminderItem{ ID: %q, Note: %q, FireDate: %s, Fired: %t, Archived: %t }",
		r.ID,
		r.Note,
		r.FireDate.Format(time.RFC3339),
		r.Fired,
		r.Archived)
} // func (r *ReminderItem) String() string
