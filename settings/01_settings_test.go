// /home/eplanet/go/src/github.com/eplanet/reminder/settings/01_settings_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 30. 08. 2026
// Time-stamp: <2026-08-31 00:31:17>

package settings

import (
	"testing"
	"time"

	"github.com/eplanet/reminder/common"
	"github.com/eplanet/reminder/objects"
)

func init() {
	common.SetBaseDir(time.Now().Format("/tmp/remind_settings_test_20060102_150405")) // nolint: errcheck
}

var cfg *Settings

func TestLoadDefaults(t *testing.T) {
	var err error

	// The config file does not exist yet, so we get the defaults.
	if cfg, err = Load(common.ConfigPath); err != nil {
		cfg = nil
		t.Fatalf("Cannot load settings: %s", err.Error())
	}

	var data = cfg.Snapshot()

	if data.Sound != objects.DefaultSound {
		t.Errorf("Unexpected default sound: %q (expected %q)",
			data.Sound,
			objects.DefaultSound)
	} else if !data.ArchiveOnDelete {
		t.Error("archive_on_delete should default to true")
	} else if data.AutoMarkExpired {
		t.Error("auto_mark_expired should default to false")
	}
} // func TestLoadDefaults(t *testing.T)

func TestSaveAndReload(t *testing.T) {
	if cfg == nil {
		t.SkipNow()
	}

	cfg.SetCustomSound("/home/nobody/chime.mp3")
	cfg.SetArchiveOnDelete(false)
	cfg.SetAutoMarkExpired(true)

	var (
		err    error
		reload *Settings
	)

	if reload, err = Load(common.ConfigPath); err != nil {
		t.Fatalf("Cannot reload settings: %s", err.Error())
	}

	var data = reload.Snapshot()

	if data.Sound != objects.SoundCustom {
		t.Errorf("Unexpected sound after reload: %q", data.Sound)
	} else if data.CustomSoundPath != "/home/nobody/chime.mp3" {
		t.Errorf("Unexpected custom sound path after reload: %q",
			data.CustomSoundPath)
	} else if data.ArchiveOnDelete {
		t.Error("archive_on_delete should have been persisted as false")
	} else if !data.AutoMarkExpired {
		t.Error("auto_mark_expired should have been persisted as true")
	}

	var sel = reload.Selection()

	if !sel.IsCustom() {
		t.Error("Selection should be a custom sound")
	} else if sel.DisplayName() != "chime.mp3" {
		t.Errorf("Unexpected display name: %q", sel.DisplayName())
	}
} // func TestSaveAndReload(t *testing.T)

func TestSilent(t *testing.T) {
	if cfg == nil {
		t.SkipNow()
	}

	cfg.SetSound(objects.SoundSilent)

	// Chained calls on the return value, the way the handlers use it.
	if !cfg.Selection().IsSilent() {
		t.Error("Selection should be silent")
	} else if cfg.Selection().DisplayName() != "Silent" {
		t.Errorf("Unexpected display name: %q", cfg.Selection().DisplayName())
	}
} // func TestSilent(t *testing.T)

func TestEnvOverride(t *testing.T) {
	t.Setenv("REMINDER_PLAYER", "aplay")

	var (
		err error
		env *Settings
	)

	if env, err = Load(""); err != nil {
		t.Fatalf("Cannot load settings: %s", err.Error())
	}

	if env.Snapshot().Player != "aplay" {
		t.Errorf("Unexpected player: %q (expected %q)",
			env.Snapshot().Player,
			"aplay")
	}
} // func TestEnvOverride(t *testing.T)
