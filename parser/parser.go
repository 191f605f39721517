// /home/eplanet/go/src/github.com/eplanet/reminder/parser/parser.go
// -*- mode: go; coding: utf-8; -*-
// Created on 25. 08. 2026
// Time-stamp: <2026-08-31 19:21:44>

// Package parser turns free-form input like "Buy milk in 2h" or
// "Call mom tomorrow at 9am" into a note and an absolute fire time.
package parser

import (
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/eplanet/reminder/common"
	"github.com/eplanet/reminder/logdomain"
	"github.com/eplanet/reminder/objects"
	"github.com/olebedev/when"
	wcommon "github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// relPattern matches a trailing relative clause like "in 2h" or
// "in 30 minutes". It must be anchored at the end of the string, a
// mid-sentence "in 2h" falls through to absolute-date detection.
var relPattern = regexp.MustCompile(
	`(?i)(?:^|\s)in\s+(\d+)\s*(s|sec|secs|second|seconds|m|min|mins|minute|minutes|h|hr|hrs|hour|hours|d|day|days|w|week|weeks)$`)

var unitSeconds = map[string]int64{
	"s": 1, "sec": 1, "secs": 1, "second": 1, "seconds": 1,
	"m": 60, "min": 60, "mins": 60, "minute": 60, "minutes": 60,
	"h": 3600, "hr": 3600, "hrs": 3600, "hour": 3600, "hours": 3600,
	"d": 86400, "day": 86400, "days": 86400,
	"w": 604800, "week": 604800, "weeks": 604800,
}

// Parser extracts a fire time and a note from a free-form string.
type Parser struct {
	log *log.Logger
	w   *when.Parser
	now func() time.Time
}

// New creates a new Parser.
func New() (*Parser, error) {
	var (
		err error
		p   = &Parser{now: time.Now}
	)

	if p.log, err = common.GetLogger(logdomain.Parser); err != nil {
		return nil, err
	}

	p.w = when.New(nil)
	p.w.Add(en.All...)
	p.w.Add(wcommon.All...)

	return p, nil
} // func New() (*Parser, error)

// Parse attempts to extract a fire time from the given input.
// A trailing relative clause ("in 10 minutes") wins over natural-language
// date expressions ("tomorrow at 9am"). The returned note is the input
// with the matched expression removed and whitespace trimmed; it may be
// empty. Parse returns nil if the input contains no usable time
// expression - the caller must not create a reminder in that case.
func (p *Parser) Parse(input string) *objects.ParsedReminder {
	var trimmed = strings.TrimSpace(input)

	if trimmed == "" {
		return nil
	}

	if res := p.parseRelative(trimmed); res != nil {
		return res
	}

	return p.parseAbsolute(trimmed)
} // func (p *Parser) Parse(input string) *objects.ParsedReminder

func (p *Parser) parseRelative(input string) *objects.ParsedReminder {
	var m = relPattern.FindStringSubmatchIndex(input)

	if m == nil {
		return nil
	}

	var (
		err error
		cnt int64
	)

	if cnt, err = strconv.ParseInt(input[m[2]:m[3]], 10, 64); err != nil {
		p.log.Printf("[CANTHAPPEN] Relative clause in %q matched with unparseable number: %s\n",
			input,
			err.Error())
		return nil
	}

	var unit = unitSeconds[strings.ToLower(input[m[4]:m[5]])]

	return &objects.ParsedReminder{
		Note: strings.TrimSpace(input[:m[0]]),
		Date: p.now().Add(time.Duration(cnt*unit) * time.Second),
	}
} // func (p *Parser) parseRelative(input string) *objects.ParsedReminder

type absMatch struct {
	index int
	text  string
	when  time.Time
}

func (p *Parser) parseAbsolute(input string) *objects.ParsedReminder {
	var (
		now     = p.now()
		rest    = input
		offset  int
		matches []absMatch
	)

	for {
		var r, err = p.w.Parse(rest, now)
		if err != nil {
			p.log.Printf("[DEBUG] Error parsing %q: %s\n",
				rest,
				err.Error())
			break
		} else if r == nil {
			break
		}

		matches = append(matches, absMatch{
			index: offset + r.Index,
			text:  r.Text,
			when:  r.Time,
		})

		var advance = r.Index + len(r.Text)
		if advance <= 0 || advance >= len(rest) {
			break
		}

		rest = rest[advance:]
		offset += advance
	}

	if len(matches) == 0 {
		return nil
	}

	// Prefer the last match that lies in the future. If none does, fall
	// back to the last match regardless of tense - the user may well
	// want to record a date they know is past.
	var pick = -1

	for i := range matches {
		if matches[i].when.After(now) {
			pick = i
		}
	}

	if pick == -1 {
		pick = len(matches) - 1
	}

	return &objects.ParsedReminder{
		Note: strings.TrimSpace(input[:matches[pick].index]),
		Date: matches[pick].when,
	}
} // func (p *Parser) parseAbsolute(input string) *objects.ParsedReminder
