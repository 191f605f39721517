// /home/eplanet/go/src/github.com/eplanet/reminder/backend/wake.go
// -*- mode: go; coding: utf-8; -*-
// Created on 28. 08. 2026
// Time-stamp: <2026-08-31 22:31:55>

package backend

import (
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	sleepSignal  = "org.freedesktop.login1.Manager.PrepareForSleep"
	unlockSignal = "org.freedesktop.login1.Session.Unlock"
)

// watchWake listens on the system bus for resume-from-sleep and
// session-unlock signals and runs a reconciliation pass on each, so
// reminders that came due while the machine was suspended or locked
// are resolved promptly.
func (d *Daemon) watchWake() {
	defer d.log.Println("[TRACE] Quitting watchWake")

	if d.sysBus == nil {
		return
	}

	var err error

	if err = d.sysBus.AddMatchSignal(
		dbus.WithMatchInterface("org.freedesktop.login1.Manager"),
		dbus.WithMatchMember("PrepareForSleep"),
	); err != nil {
		d.log.Printf("[ERROR] Cannot subscribe to PrepareForSleep: %s\n",
			err.Error())
	}

	if err = d.sysBus.AddMatchSignal(
		dbus.WithMatchInterface("org.freedesktop.login1.Session"),
		dbus.WithMatchMember("Unlock"),
	); err != nil {
		d.log.Printf("[ERROR] Cannot subscribe to Unlock: %s\n",
			err.Error())
	}

	var (
		sigQ = make(chan *dbus.Signal, 8)
		tick = time.NewTicker(queueTimeout)
	)
	defer tick.Stop()

	d.sysBus.Signal(sigQ)

	for d.IsAlive() {
		select {
		case <-tick.C:
			continue
		case sig := <-sigQ:
			if sig == nil {
				continue
			}

			switch sig.Name {
			case sleepSignal:
				// The signal fires once going to sleep (true) and
				// once waking up (false); only the latter matters.
				if len(sig.Body) == 1 {
					if sleeping, ok := sig.Body[0].(bool); ok && !sleeping {
						d.log.Println("[INFO] System resumed from sleep, reconciling")
						d.sched.Reconcile()
					}
				}
			case unlockSignal:
				d.log.Println("[INFO] Session was unlocked, reconciling")
				d.sched.Reconcile()
			}
		}
	}
} // func (d *Daemon) watchWake()
