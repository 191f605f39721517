// /home/eplanet/go/src/github.com/eplanet/reminder/objects/parsed.go
// -*- mode: go; coding: utf-8; -*-
// Created on 24. 08. 2026
// Time-stamp: <2026-08-30 14:27:56>

package objects

import "time"

//go:generate ffjson parsed.go

// ParsedReminder is the result of parsing a free-form input string.
// Note may be empty if the input consisted solely of a time expression.
// It is consumed immediately by the scheduling operation and never persisted.
type ParsedReminder struct {
	Note string
	Date time.Time
}
