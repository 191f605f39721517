// /home/eplanet/go/src/github.com/eplanet/reminder/objects/notification.go
// -*- mode: go; coding: utf-8; -*-
// Created on 24. 08. 2026
// Time-stamp: <2026-08-25 21:11:40>

// Package objects provides the data types used by the application.
package objects

import "time"

// Notification is the common interface for items the user should be
// notified about.
type Notification interface {
	Due() time.Time
	IsDue() bool
	Payload() (string, string)
}
