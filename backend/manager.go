// /home/eplanet/go/src/github.com/eplanet/reminder/backend/manager.go
// -*- mode: go; coding: utf-8; -*-
// Created on 27. 08. 2026
// Time-stamp: <2026-08-31 22:17:02>

package backend

import (
	"errors"
	"time"

	"github.com/eplanet/reminder/objects"
)

// ErrParse is returned when the input contains no usable time
// expression. The caller should tell the user to rephrase; no reminder
// is created.
var ErrParse = errors.New("input contains no usable time expression")

// These methods are the operations the presentation layer uses. All
// reminder-state mutation goes through the store, all timing through
// the scheduler - never around either.

// ScheduleInput parses a free-form input string and schedules a
// reminder from the result. If the parsed note is empty, the full
// input serves as the note.
func (d *Daemon) ScheduleInput(input string) (objects.ReminderItem, error) {
	var parsed = d.parser.Parse(input)

	if parsed == nil {
		d.log.Printf("[DEBUG] Cannot parse %q\n", input)
		return objects.ReminderItem{}, ErrParse
	}

	var note = parsed.Note
	if note == "" {
		note = input
	}

	return d.ScheduleReminder(note, parsed.Date), nil
} // func (d *Daemon) ScheduleInput(input string) (objects.ReminderItem, error)

// ScheduleReminder creates a reminder and arms its timer.
func (d *Daemon) ScheduleReminder(note string, fireDate time.Time) objects.ReminderItem {
	var item = d.db.Add(note, fireDate)

	d.sched.Arm(item)

	d.log.Printf("[INFO] Scheduled reminder %s (%q) for %s\n",
		item.ID,
		item.Note,
		item.FireDate.Format(time.RFC3339))

	return item
} // func (d *Daemon) ScheduleReminder(note string, fireDate time.Time) objects.ReminderItem

// UpdateReminder replaces note and fire time of the given reminder and
// re-arms its timer. Editing a fired reminder re-activates it. An
// unknown ID is a no-op.
func (d *Daemon) UpdateReminder(id, note string, fireDate time.Time) {
	d.sched.Cancel(id)

	if !d.db.Update(id, note, fireDate) {
		return
	}

	if item, ok := d.db.Get(id); ok {
		d.sched.Arm(item)
	}
} // func (d *Daemon) UpdateReminder(id, note string, fireDate time.Time)

// RemoveReminder deletes the given reminder, archiving instead if
// archive-on-delete is enabled.
func (d *Daemon) RemoveReminder(id string) {
	d.sched.Cancel(id)
	d.db.Remove(id, d.cfg.ArchiveOnDelete())
} // func (d *Daemon) RemoveReminder(id string)

// PendingReminders returns all pending reminders, ascending by fire time.
func (d *Daemon) PendingReminders() []objects.ReminderItem {
	return d.db.Pending()
} // func (d *Daemon) PendingReminders() []objects.ReminderItem

// FiredReminders returns all fired, non-archived reminders, descending
// by fire time.
func (d *Daemon) FiredReminders() []objects.ReminderItem {
	return d.db.Fired()
} // func (d *Daemon) FiredReminders() []objects.ReminderItem

// PreviewSound plays the currently selected sound once.
func (d *Daemon) PreviewSound() {
	d.playSound(d.cfg.Selection())
} // func (d *Daemon) PreviewSound()
