// /home/eplanet/go/src/github.com/eplanet/reminder/backend/sound.go
// -*- mode: go; coding: utf-8; -*-
// Created on 28. 08. 2026
// Time-stamp: <2026-08-31 22:26:40>

package backend

import (
	"os/exec"
	"path/filepath"

	"github.com/eplanet/reminder/objects"
)

// soundThemeDir is where the freedesktop sound theme keeps its files.
const soundThemeDir = "/usr/share/sounds/freedesktop/stereo"

// playSound plays the given sound selection by handing it to the
// configured player. Playback is strictly best-effort: any failure is
// logged and otherwise ignored.
func (d *Daemon) playSound(sel objects.SoundSelection) {
	if sel.IsSilent() {
		return
	}

	var path string

	if sel.IsCustom() {
		if sel.Path == "" {
			d.log.Println("[DEBUG] Custom sound is selected, but no file is set")
			return
		}
		path = sel.Path
	} else {
		path = filepath.Join(soundThemeDir, sel.Name+".oga")
	}

	var (
		player = d.cfg.Snapshot().Player
		cmd    = exec.Command(player, path)
	)

	if err := cmd.Start(); err != nil {
		d.log.Printf("[ERROR] Cannot play %s via %s: %s\n",
			path,
			player,
			err.Error())
		return
	}

	go cmd.Wait() // nolint: errcheck
} // func (d *Daemon) playSound(sel objects.SoundSelection)
