// /home/eplanet/go/src/github.com/eplanet/reminder/logdomain/logdomain.go
// -*- mode: go; coding: utf-8; -*-
// Created on 24. 08. 2026
// Time-stamp: <2026-08-28 19:03:47>

//go:generate stringer -type=ID

// Package logdomain provides symbolic constants to identify the
// areas of the application that perform logging.
package logdomain

// ID identifies a log source.
type ID uint8

// These constants identify the various parts of the application.
const (
	Backend ID = iota
	Client
	Common
	Parser
	Scheduler
	Settings
	Store
)

// AllDomains returns a slice of all the known log sources.
func AllDomains() []ID {
	return []ID{
		Backend,
		Client,
		Common,
		Parser,
		Scheduler,
		Settings,
		Store,
	}
} // func AllDomains() []ID
