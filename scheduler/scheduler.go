// /home/eplanet/go/src/github.com/eplanet/reminder/scheduler/scheduler.go
// -*- mode: go; coding: utf-8; -*-
// Created on 26. 08. 2026
// Time-stamp: <2026-08-31 21:14:26>

// Package scheduler maps each pending reminder to exactly one timer
// and performs the firing transition when a timer expires. All state
// transitions - arming, cancelling, expiry, reconciliation - are
// serialized by a single mutex, and the store's idempotent MarkFired
// guarantees the notification side effects run at most once per
// reminder.
package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/eplanet/reminder/common"
	"github.com/eplanet/reminder/logdomain"
	"github.com/eplanet/reminder/objects"
	"github.com/eplanet/reminder/settings"
	"github.com/eplanet/reminder/store"
)

type armedTimer struct {
	timer *time.Timer
	gen   uint64
}

// Scheduler owns the timer table. The expiry callback of a cancelled
// timer may still run, but the generation check under the lock turns
// it into a no-op, so Cancel is synchronous: once it returns, the
// timer can no longer cause a firing.
type Scheduler struct {
	log    *log.Logger
	lock   sync.Mutex
	db     *store.Store
	cfg    *settings.Settings
	queue  chan<- objects.Notification
	timers map[string]*armedTimer
	gen    uint64
}

// New creates a Scheduler. Fired reminders that warrant user-visible
// side effects are handed off through queue.
func New(db *store.Store, cfg *settings.Settings, queue chan<- objects.Notification) (*Scheduler, error) {
	var (
		err error
		s   = &Scheduler{
			db:     db,
			cfg:    cfg,
			queue:  queue,
			timers: make(map[string]*armedTimer),
		}
	)

	if s.log, err = common.GetLogger(logdomain.Scheduler); err != nil {
		return nil, err
	}

	return s, nil
} // func New(db *store.Store, cfg *settings.Settings, queue chan<- objects.Notification) (*Scheduler, error)

// Arm schedules the firing of the given reminder. If it already has a
// timer, the old one is cancelled first. A fire time at or before the
// current moment fires immediately through the same path as a timer
// expiry; in that case - and only that case - the auto-mark-expired
// setting suppresses the side effects.
func (s *Scheduler) Arm(item objects.ReminderItem) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.cancelLocked(item.ID)

	if item.Fired || item.Archived {
		return
	}

	var delay = time.Until(item.FireDate)

	if delay <= 0 {
		s.fireLocked(item.ID, s.cfg.AutoMarkExpired())
		return
	}

	s.gen++
	var gen = s.gen

	s.timers[item.ID] = &armedTimer{
		gen: gen,
		timer: time.AfterFunc(delay, func() {
			s.expire(item.ID, gen)
		}),
	}

	s.log.Printf("[TRACE] Armed timer for reminder %s, due %s\n",
		item.ID,
		item.FireDate.Format(common.TimestampFormat))
} // func (s *Scheduler) Arm(item objects.ReminderItem)

// ArmAll arms a timer for every pending reminder. Meant to run once at
// startup, after the reconciliation pass has dealt with the overdue ones.
func (s *Scheduler) ArmAll() {
	for _, item := range s.db.Pending() {
		s.Arm(item)
	}
} // func (s *Scheduler) ArmAll()

// Cancel discards the timer for the given reminder, if one exists.
func (s *Scheduler) Cancel(id string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.cancelLocked(id)
} // func (s *Scheduler) Cancel(id string)

func (s *Scheduler) cancelLocked(id string) {
	var entry = s.timers[id]

	if entry == nil {
		return
	}

	entry.timer.Stop()
	delete(s.timers, id)
} // func (s *Scheduler) cancelLocked(id string)

// Active returns true if a timer is currently armed for the given reminder.
func (s *Scheduler) Active(id string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.timers[id] != nil
} // func (s *Scheduler) Active(id string) bool

// ActiveCount returns the number of armed timers.
func (s *Scheduler) ActiveCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return len(s.timers)
} // func (s *Scheduler) ActiveCount() int

// Shutdown cancels all armed timers.
func (s *Scheduler) Shutdown() {
	s.lock.Lock()
	defer s.lock.Unlock()

	for id, entry := range s.timers {
		entry.timer.Stop()
		delete(s.timers, id)
	}
} // func (s *Scheduler) Shutdown()

// expire is the timer callback.
func (s *Scheduler) expire(id string, gen uint64) {
	s.lock.Lock()
	defer s.lock.Unlock()

	var entry = s.timers[id]

	if entry == nil || entry.gen != gen {
		// Cancelled or re-armed after this callback was already queued.
		return
	}

	delete(s.timers, id)
	s.fireLocked(id, false)
} // func (s *Scheduler) expire(id string, gen uint64)

// fireLocked performs the firing transition. The store mutation commits
// before any side effect is attempted, so a failed side effect can
// never leave a reminder stuck in pending state.
func (s *Scheduler) fireLocked(id string, silent bool) {
	var item, ok = s.db.Get(id)

	if !ok {
		s.log.Printf("[DEBUG] Reminder %s is gone, nothing to fire\n", id)
		return
	} else if item.Archived {
		return
	}

	if !s.db.MarkFired(id) {
		// Already fired, e.g. by a reconciliation pass racing a timer.
		return
	}

	if silent {
		s.log.Printf("[DEBUG] Reminder %s (%q) expired, marked fired without notification\n",
			item.ID,
			item.Note)
		return
	}

	item.Fired = true

	select {
	case s.queue <- &item:
		// ok
	default:
		s.log.Printf("[ERROR] Notification queue is full, dropping notification for reminder %s (%q)\n",
			item.ID,
			item.Note)
	}
} // func (s *Scheduler) fireLocked(id string, silent bool)
