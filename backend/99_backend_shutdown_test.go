// /home/eplanet/go/src/github.com/eplanet/reminder/backend/99_backend_shutdown_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 30. 08. 2026
// Time-stamp: <2026-08-31 00:49:26>

package backend

import "testing"

func TestBanish(t *testing.T) {
	if back == nil {
		t.SkipNow()
	} else if !back.IsAlive() {
		t.SkipNow()
	}

	var err error

	if err = back.Banish(); err != nil {
		t.Errorf("Failed to banish Daemon: %s", err.Error())
	}
} // func TestBanish(t *testing.T)
