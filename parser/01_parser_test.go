// /home/eplanet/go/src/github.com/eplanet/reminder/parser/01_parser_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 29. 08. 2026
// Time-stamp: <2026-08-31 23:44:18>

package parser

import (
	"testing"
	"time"

	"github.com/eplanet/reminder/common"
)

func init() {
	common.SetBaseDir(time.Now().Format("/tmp/remind_parser_test_20060102_150405")) // nolint: errcheck
}

var prs *Parser

// refTime is the pinned "current moment" for all parser tests, so the
// expected dates are fully deterministic.
var refTime = time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

func TestCreateParser(t *testing.T) {
	var err error

	if prs, err = New(); err != nil {
		prs = nil
		t.Fatalf("Cannot create Parser: %s",
			err.Error())
	}

	prs.now = func() time.Time { return refTime }
} // func TestCreateParser(t *testing.T)

func TestParseRelative(t *testing.T) {
	if prs == nil {
		t.SkipNow()
	}

	type testCase struct {
		input   string
		note    string
		seconds int64
	}

	var cases = []testCase{
		{"Buy milk in 1s", "Buy milk", 1},
		{"Call mom in 2h", "Call mom", 7200},
		{"in 30 minutes", "", 1800},
		{"in 1 week", "", 604800},
		{"Water plants In 3 Days", "Water plants", 259200},
		{"Ping me in 10 min", "Ping me", 600},
		{"Stand up in 45min", "Stand up", 2700},
		{"  Tea   in 5 m  ", "Tea", 300},
	}

	for _, c := range cases {
		var res = prs.Parse(c.input)

		if res == nil {
			t.Errorf("Cannot parse %q", c.input)
			continue
		}

		var expect = refTime.Add(time.Second * time.Duration(c.seconds))

		if !res.Date.Equal(expect) {
			t.Errorf("Unexpected date for %q: %s (expected %s)",
				c.input,
				res.Date.Format(common.TimestampFormat),
				expect.Format(common.TimestampFormat))
		}

		if res.Note != c.note {
			t.Errorf("Unexpected note for %q: %q (expected %q)",
				c.input,
				res.Note,
				c.note)
		}
	}
} // func TestParseRelative(t *testing.T)

func TestParseGarbage(t *testing.T) {
	if prs == nil {
		t.SkipNow()
	}

	var cases = []string{
		"",
		"   ",
		"in abc minutes",
		"2 hours",
	}

	for _, c := range cases {
		if res := prs.Parse(c); res != nil {
			t.Errorf("Input %q should not parse, but yielded %q / %s",
				c,
				res.Note,
				res.Date.Format(common.TimestampFormat))
		}
	}
} // func TestParseGarbage(t *testing.T)

func TestParseAbsolute(t *testing.T) {
	if prs == nil {
		t.SkipNow()
	}

	var res = prs.Parse("Call mom tomorrow at 9am")

	if res == nil {
		t.Fatal(`Cannot parse "Call mom tomorrow at 9am"`)
	}

	var expect = time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)

	if !res.Date.Equal(expect) {
		t.Errorf("Unexpected date: %s (expected %s)",
			res.Date.Format(common.TimestampFormat),
			expect.Format(common.TimestampFormat))
	}

	if res.Note != "Call mom" {
		t.Errorf("Unexpected note: %q (expected %q)",
			res.Note,
			"Call mom")
	}
} // func TestParseAbsolute(t *testing.T)

// A date expression that only resolves to the past is still accepted,
// the user may well want to record a date they know is over.
func TestParseAbsolutePast(t *testing.T) {
	if prs == nil {
		t.SkipNow()
	}

	var res = prs.Parse("Team retro last friday")

	if res == nil {
		t.Fatal(`Cannot parse "Team retro last friday"`)
	} else if !res.Date.Before(refTime) {
		t.Errorf("Expected a past date, got %s",
			res.Date.Format(common.TimestampFormat))
	} else if res.Note != "Team retro" {
		t.Errorf("Unexpected note: %q (expected %q)",
			res.Note,
			"Team retro")
	}
} // func TestParseAbsolutePast(t *testing.T)

// With several future date expressions in one input, the last one wins.
func TestParseAbsoluteMultiple(t *testing.T) {
	if prs == nil {
		t.SkipNow()
	}

	var res = prs.Parse("Dentist today at 5pm or tomorrow at 9am")

	if res == nil {
		t.Fatal(`Cannot parse "Dentist today at 5pm or tomorrow at 9am"`)
	}

	var expect = time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)

	if !res.Date.Equal(expect) {
		t.Errorf("Unexpected date: %s (expected %s)",
			res.Date.Format(common.TimestampFormat),
			expect.Format(common.TimestampFormat))
	}
} // func TestParseAbsoluteMultiple(t *testing.T)
