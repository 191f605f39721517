// /home/eplanet/go/src/github.com/eplanet/reminder/settings/settings.go
// -*- mode: go; coding: utf-8; -*-
// Created on 26. 08. 2026
// Time-stamp: <2026-08-31 20:31:17>

// Package settings holds the process-wide configuration: the selected
// notification sound, the archive-on-delete flag and the
// auto-mark-expired flag. Values are loaded from a YAML file with
// environment overrides and written back whenever they change.
package settings

import (
	"bytes"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/eplanet/reminder/common"
	"github.com/eplanet/reminder/logdomain"
	"github.com/eplanet/reminder/objects"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/natefinch/atomic"
)

const envPrefix = "REMINDER_"

// Data are the configuration values themselves.
type Data struct {
	Sound           string `koanf:"sound" json:"sound"`
	CustomSoundPath string `koanf:"custom_sound_path" json:"customSoundPath"`
	ArchiveOnDelete bool   `koanf:"archive_on_delete" json:"archiveOnDelete"`
	AutoMarkExpired bool   `koanf:"auto_mark_expired" json:"autoMarkExpired"`
	Player          string `koanf:"player" json:"player"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"sound":             objects.DefaultSound,
		"custom_sound_path": "",
		"archive_on_delete": true,
		"auto_mark_expired": false,
		"player":            "paplay",
	}
} // func defaults() map[string]interface{}

// Settings wraps the configuration values and their persistence.
type Settings struct {
	log  *log.Logger
	lock sync.RWMutex
	path string
	data Data
}

// Load reads the configuration, layering the file at path (if it
// exists) and REMINDER_* environment variables over the defaults.
// An empty path yields in-memory settings that are never written out.
func Load(path string) (*Settings, error) {
	var (
		err error
		s   = &Settings{path: path}
		k   = koanf.New(".")
	)

	if s.log, err = common.GetLogger(logdomain.Settings); err != nil {
		return nil, err
	}

	if err = k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		s.log.Printf("[CANTHAPPEN] Cannot load default settings: %s\n",
			err.Error())
		return nil, err
	}

	if path != "" {
		if _, err = os.Stat(path); err == nil {
			if err = k.Load(file.Provider(path), yaml.Parser()); err != nil {
				s.log.Printf("[ERROR] Cannot load settings from %s, keeping defaults: %s\n",
					path,
					err.Error())
			}
		}
	}

	if err = k.Load(env.Provider(envPrefix, ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, envPrefix))
	}), nil); err != nil {
		s.log.Printf("[ERROR] Cannot load settings from environment: %s\n",
			err.Error())
	}

	if err = k.Unmarshal("", &s.data); err != nil {
		s.log.Printf("[ERROR] Cannot unmarshal settings: %s\n",
			err.Error())
		return nil, err
	}

	return s, nil
} // func Load(path string) (*Settings, error)

// save writes the current values back to the settings file.
// Callers must hold the lock.
func (s *Settings) save() {
	if s.path == "" {
		return
	}

	var (
		err error
		buf []byte
		k   = koanf.New(".")
	)

	var values = map[string]interface{}{
		"sound":             s.data.Sound,
		"custom_sound_path": s.data.CustomSoundPath,
		"archive_on_delete": s.data.ArchiveOnDelete,
		"auto_mark_expired": s.data.AutoMarkExpired,
		"player":            s.data.Player,
	}

	if err = k.Load(confmap.Provider(values, "."), nil); err != nil {
		s.log.Printf("[CANTHAPPEN] Cannot stage settings for writing: %s\n",
			err.Error())
		return
	} else if buf, err = k.Marshal(yaml.Parser()); err != nil {
		s.log.Printf("[ERROR] Cannot serialize settings: %s\n",
			err.Error())
		return
	} else if err = atomic.WriteFile(s.path, bytes.NewReader(buf)); err != nil {
		s.log.Printf("[ERROR] Cannot write settings to %s: %s\n",
			s.path,
			err.Error())
	}
} // func (s *Settings) save()

// Snapshot returns a copy of the current configuration values.
func (s *Settings) Snapshot() Data {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.data
} // func (s *Settings) Snapshot() Data

// Selection returns the currently configured sound selection.
func (s *Settings) Selection() objects.SoundSelection {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return objects.SoundSelection{
		Name: s.data.Sound,
		Path: s.data.CustomSoundPath,
	}
} // func (s *Settings) Selection() objects.SoundSelection

// SetSound selects a system sound by name, or silence via the
// SoundSilent marker.
func (s *Settings) SetSound(name string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.data.Sound = name
	s.save()
} // func (s *Settings) SetSound(name string)

// SetCustomSound selects the sound file at the given path.
func (s *Settings) SetCustomSound(path string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.data.Sound = objects.SoundCustom
	s.data.CustomSoundPath = path
	s.save()
} // func (s *Settings) SetCustomSound(path string)

// SetArchiveOnDelete switches between soft and hard deletion.
func (s *Settings) SetArchiveOnDelete(flag bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.data.ArchiveOnDelete = flag
	s.save()
} // func (s *Settings) SetArchiveOnDelete(flag bool)

// SetAutoMarkExpired controls whether reminders that expired while no
// timer was live are fired silently.
func (s *Settings) SetAutoMarkExpired(flag bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.data.AutoMarkExpired = flag
	s.save()
} // func (s *Settings) SetAutoMarkExpired(flag bool)

// ArchiveOnDelete returns the archive-on-delete flag.
func (s *Settings) ArchiveOnDelete() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.data.ArchiveOnDelete
} // func (s *Settings) ArchiveOnDelete() bool

// AutoMarkExpired returns the auto-mark-expired flag.
func (s *Settings) AutoMarkExpired() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.data.AutoMarkExpired
} // func (s *Settings) AutoMarkExpired() bool
