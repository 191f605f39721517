// /home/eplanet/go/src/github.com/eplanet/reminder/backend/backend.go
// -*- mode: go; coding: utf-8; -*-
// Created on 27. 08. 2026
// Time-stamp: <2026-08-31 22:03:16>

// Package backend implements the daemon at the heart of the
// application: it owns the reminder store, the timers, the
// reconciliation triggers, desktop notifications via DBus, and the web
// interface the presentation clients talk to.
package backend

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/eplanet/reminder/common"
	"github.com/eplanet/reminder/logdomain"
	"github.com/eplanet/reminder/objects"
	"github.com/eplanet/reminder/parser"
	"github.com/eplanet/reminder/scheduler"
	"github.com/eplanet/reminder/settings"
	"github.com/eplanet/reminder/store"
	"github.com/godbus/dbus/v5"
	"github.com/gorilla/mux"
)

const (
	notifyObj    = "org.freedesktop.Notifications"
	notifyPath   = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"
	queueDepth   = 16
	queueTimeout = time.Second * 2
)

// Daemon is the centerpiece of the backend, coordinating between the
// store, the scheduler, DBus and the clients.
type Daemon struct {
	log        *log.Logger
	db         *store.Store
	parser     *parser.Parser
	sched      *scheduler.Scheduler
	cfg        *settings.Settings
	bus        *dbus.Conn
	sysBus     *dbus.Conn
	lock       sync.RWMutex
	active     bool
	Queue      chan objects.Notification
	web        http.Server
	router     *mux.Router
	listenAddr string
	idLock     sync.Mutex
	idCnt      int64
}

// Summon summons a Daemon and returns it. No sacrifice or idolatry is required.
//
// A failure to reach DBus is not fatal: notifications and wake-signal
// reconciliation degrade to log messages, everything else keeps working.
func Summon(addr string) (*Daemon, error) {
	var (
		err error
		d   = &Daemon{
			listenAddr: addr,
			active:     true,
			Queue:      make(chan objects.Notification, queueDepth),
			router:     mux.NewRouter(),
		}
	)

	if d.log, err = common.GetLogger(logdomain.Backend); err != nil {
		fmt.Printf("ERROR initializing Logger: %s\n",
			err.Error())
		return nil, err
	} else if d.db, err = store.Open(common.ReminderPath); err != nil {
		d.log.Printf("[ERROR] Cannot open reminder store: %s\n",
			err.Error())
		return nil, err
	} else if d.cfg, err = settings.Load(common.ConfigPath); err != nil {
		d.log.Printf("[ERROR] Cannot load settings: %s\n",
			err.Error())
		return nil, err
	} else if d.parser, err = parser.New(); err != nil {
		d.log.Printf("[ERROR] Cannot create Parser: %s\n",
			err.Error())
		return nil, err
	} else if d.sched, err = scheduler.New(d.db, d.cfg, d.Queue); err != nil {
		d.log.Printf("[ERROR] Cannot create Scheduler: %s\n",
			err.Error())
		return nil, err
	}

	if d.bus, err = dbus.SessionBus(); err != nil {
		d.log.Printf("[ERROR] Failed to connect to DBus session bus, notifications are disabled: %s\n",
			err.Error())
		d.bus = nil
	}

	if d.sysBus, err = dbus.SystemBus(); err != nil {
		d.log.Printf("[ERROR] Failed to connect to DBus system bus, wake signals are disabled: %s\n",
			err.Error())
		d.sysBus = nil
	}

	d.web.Addr = addr
	d.web.ErrorLog = d.log
	d.web.Handler = d.router

	if err = d.initWebHandlers(); err != nil {
		d.log.Printf("[ERROR] Failed to initialize web server: %s\n",
			err.Error())
		return nil, err
	}

	go d.notifyLoop()
	go d.watchWake()
	go d.serveHTTP()

	// Catch up on anything that came due while we were not running,
	// then arm timers for what is left.
	d.sched.Reconcile()
	d.sched.ArmAll()

	return d, nil
} // func Summon(addr string) (*Daemon, error)

// IsAlive returns true if the Daemon's active flag is set.
func (d *Daemon) IsAlive() bool {
	d.lock.RLock()
	var alive = d.active
	d.lock.RUnlock()

	return alive
} // func (d *Daemon) IsAlive() bool

// Banish clears the Daemon's active flag, telling components to shut down.
func (d *Daemon) Banish() error {
	var (
		err         error
		ctx, cancel = context.WithTimeout(context.Background(), time.Second*3)
	)
	defer cancel()

	if err = d.web.Shutdown(ctx); err != nil {
		d.log.Printf("[ERROR] Failed to shutdown web server: %s\n",
			err.Error())
	}

	if ctx.Err() != nil {
		err = ctx.Err()
		d.log.Printf("[ERROR] Failed to gracefully shut down web server: %s\n",
			ctx.Err().Error())
		d.web.Close() // nolint: errcheck
	}

	d.sched.Shutdown()

	d.lock.Lock()
	d.active = false
	d.lock.Unlock()
	return err
} // func (d *Daemon) Banish() error

func (d *Daemon) notifyLoop() {
	defer d.log.Println("[TRACE] Quitting notifyLoop")

	var (
		err  error
		tick = time.NewTicker(queueTimeout)
	)
	defer tick.Stop()

	for d.IsAlive() {
		select {
		case <-tick.C:
			continue
		case m := <-d.Queue:
			var title, body = m.Payload()
			d.log.Printf("[DEBUG] Received Notification: %s\n%s\n",
				title,
				body)

			d.playSound(d.cfg.Selection())

			if err = d.notify(m); err != nil {
				d.log.Printf("[ERROR] Failed to post Notification %q: %s\n",
					title,
					err.Error())
			}
		}
	}
} // func (d *Daemon) notifyLoop()

func (d *Daemon) notify(n objects.Notification) error {
	if d.bus == nil {
		return fmt.Errorf("no connection to DBus session bus")
	}

	var (
		obj        = d.bus.Object(notifyObj, notifyPath)
		head, body string
	)

	if obj == nil {
		var err = fmt.Errorf("Did not find object %s (%s) on session bus",
			notifyObj,
			notifyPath)
		d.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	head, body = n.Payload()

	var hints = map[string]dbus.Variant{}

	// For a system sound we also pass a sound hint so the notification
	// daemon can play it; custom files and silence are handled by
	// playSound alone.
	if sel := d.cfg.Selection(); !sel.IsSilent() && !sel.IsCustom() {
		hints["sound-name"] = dbus.MakeVariant(sel.Name)
	}

	var res = obj.Call(
		notifyMethod,
		0,
		common.AppName,
		uint32(0),
		"",
		head,
		body,
		[]string{},
		hints,
		int32(-1),
	)

	if res.Err != nil {
		d.log.Printf("[ERROR] Cannot send Notification %q: %s\n",
			head,
			res.Err.Error())
		return res.Err
	}

	return nil
} // func (d *Daemon) notify(n objects.Notification) error

func (d *Daemon) getID() int64 {
	d.idLock.Lock()
	d.idCnt++
	var id = d.idCnt
	d.idLock.Unlock()
	return id
} // func (d *Daemon) getID() int64
