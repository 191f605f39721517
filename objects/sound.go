// /home/eplanet/go/src/github.com/eplanet/reminder/objects/sound.go
// -*- mode: go; coding: utf-8; -*-
// Created on 25. 08. 2026
// Time-stamp: <2026-08-31 18:10:05>

package objects

import "path/filepath"

// Markers for the two non-system sound selections.
const (
	SoundSilent = "__silent__"
	SoundCustom = "__custom__"
)

// DefaultSound is the sound used unless the user picks another one.
const DefaultSound = "alarm-clock-elapsed"

// SystemSounds are the names of the sounds from the freedesktop sound
// theme we offer in the picker.
var SystemSounds = []string{
	"alarm-clock-elapsed",
	"bell",
	"complete",
	"dialog-information",
	"message",
	"message-new-instant",
	"phone-incoming-call",
}

// KnownSound returns true if name is a valid value for the sound
// setting: one of the two markers or a system sound from the picker.
func KnownSound(name string) bool {
	if name == SoundSilent || name == SoundCustom {
		return true
	}

	for _, s := range SystemSounds {
		if s == name {
			return true
		}
	}

	return false
} // func KnownSound(name string) bool

// SoundSelection describes what - if anything - to play when a
// Reminder fires. Name is a system sound name or one of the markers
// above; Path is only meaningful for a custom sound.
type SoundSelection struct {
	Name string
	Path string
}

// IsSilent returns true if no sound is to be played.
func (s SoundSelection) IsSilent() bool {
	return s.Name == SoundSilent
} // func (s SoundSelection) IsSilent() bool

// IsCustom returns true if the user picked a sound file of their own.
func (s SoundSelection) IsCustom() bool {
	return s.Name == SoundCustom
} // func (s SoundSelection) IsCustom() bool

// DisplayName returns the name to show in the picker.
func (s SoundSelection) DisplayName() string {
	switch {
	case s.IsSilent():
		return "Silent"
	case s.IsCustom():
		if s.Path == "" {
			return "Custom"
		}
		return filepath.Base(s.Path)
	default:
		return s.Name
	}
} // func (s SoundSelection) DisplayName() string
