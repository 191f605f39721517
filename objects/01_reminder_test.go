// /home/eplanet/go/src/github.com/eplanet/reminder/objects/01_reminder_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 30. 08. 2026
// Time-stamp: <2026-08-31 00:52:40>

package objects

import (
	"testing"
	"time"
)

func TestReminderIsDue(t *testing.T) {
	var r = ReminderItem{
		ID:       "test-0001",
		Note:     "Feed the cat",
		FireDate: time.Now().Add(-time.Minute),
	}

	if !r.IsDue() {
		t.Error("A reminder with a past fire time should be due")
	} else if !r.IsPending() {
		t.Error("A fresh reminder should be pending")
	}

	r.FireDate = time.Now().Add(time.Hour)

	if r.IsDue() {
		t.Error("A reminder with a future fire time should not be due")
	}

	r.Fired = true

	if r.IsPending() {
		t.Error("A fired reminder should not be pending")
	}
} // func TestReminderIsDue(t *testing.T)

func TestSoundSelection(t *testing.T) {
	type testCase struct {
		sel     SoundSelection
		silent  bool
		custom  bool
		display string
	}

	var cases = []testCase{
		{SoundSelection{Name: "bell"}, false, false, "bell"},
		{SoundSelection{Name: SoundSilent}, true, false, "Silent"},
		{SoundSelection{Name: SoundCustom}, false, true, "Custom"},
		{SoundSelection{Name: SoundCustom, Path: "/tmp/ding.mp3"}, false, true, "ding.mp3"},
	}

	for _, c := range cases {
		if c.sel.IsSilent() != c.silent {
			t.Errorf("IsSilent for %q should be %t", c.sel.Name, c.silent)
		} else if c.sel.IsCustom() != c.custom {
			t.Errorf("IsCustom for %q should be %t", c.sel.Name, c.custom)
		} else if c.sel.DisplayName() != c.display {
			t.Errorf("Unexpected display name %q (expected %q)",
				c.sel.DisplayName(),
				c.display)
		}
	}
} // func TestSoundSelection(t *testing.T)

func TestKnownSound(t *testing.T) {
	for _, name := range SystemSounds {
		if !KnownSound(name) {
			t.Errorf("System sound %q should be accepted", name)
		}
	}

	if !KnownSound(SoundSilent) {
		t.Error("The silent marker should be accepted")
	} else if !KnownSound(SoundCustom) {
		t.Error("The custom marker should be accepted")
	} else if KnownSound("ka-ching") {
		t.Error("An unknown sound name should be rejected")
	} else if KnownSound("") {
		t.Error("An empty sound name should be rejected")
	}
} // func TestKnownSound(t *testing.T)
