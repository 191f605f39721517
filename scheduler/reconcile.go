// /home/eplanet/go/src/github.com/eplanet/reminder/scheduler/reconcile.go
// -*- mode: go; coding: utf-8; -*-
// Created on 27. 08. 2026
// Time-stamp: <2026-08-31 21:20:48>

package scheduler

import "time"

// Reconcile catches reminders whose fire time elapsed while no timer
// was live - the process was not running, or the machine was asleep.
// It runs at startup before ArmAll, and again on resume-from-sleep and
// session unlock. Running it twice in quick succession cannot
// double-fire: the firing path is gated on the store's idempotent
// MarkFired transition.
func (s *Scheduler) Reconcile() {
	s.lock.Lock()
	defer s.lock.Unlock()

	var (
		now    = time.Now()
		silent = s.cfg.AutoMarkExpired()
		cnt    int
	)

	for _, item := range s.db.Pending() {
		if item.FireDate.After(now) {
			continue
		}

		s.cancelLocked(item.ID)
		s.fireLocked(item.ID, silent)
		cnt++
	}

	if cnt > 0 {
		s.log.Printf("[INFO] Reconciliation pass caught %d overdue reminder(s)\n",
			cnt)
	}
} // func (s *Scheduler) Reconcile()
