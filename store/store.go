// /home/eplanet/go/src/github.com/eplanet/reminder/store/store.go
// -*- mode: go; coding: utf-8; -*-
// Created on 25. 08. 2026
// Time-stamp: <2026-08-31 20:05:31>

// Package store keeps the full set of reminders, in memory and on disk.
// The on-disk form is a single pretty-printed JSON document that is
// replaced atomically on every mutation, so a torn write can never
// clobber the previous valid document.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/eplanet/reminder/common"
	"github.com/eplanet/reminder/logdomain"
	"github.com/eplanet/reminder/objects"
	"github.com/natefinch/atomic"
	"github.com/pquerna/ffjson/ffjson"
)

// Store is the owner of all reminder state. Every mutation is written
// to disk before the call returns; if the write fails, the in-memory
// state remains the source of truth for the running process.
type Store struct {
	log   *log.Logger
	lock  sync.RWMutex
	path  string
	items []objects.ReminderItem
}

// Open creates a Store backed by the document at path and loads it.
// A missing document yields an empty Store; a malformed one is logged
// and likewise treated as empty, never as a fatal error.
func Open(path string) (*Store, error) {
	var (
		err error
		s   = &Store{path: path}
	)

	if s.log, err = common.GetLogger(logdomain.Store); err != nil {
		return nil, err
	}

	s.load()

	return s, nil
} // func Open(path string) (*Store, error)

func (s *Store) load() {
	var (
		err error
		buf []byte
	)

	if buf, err = os.ReadFile(s.path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Printf("[ERROR] Cannot read %s: %s\n",
				s.path,
				err.Error())
		}
		return
	}

	var items []objects.ReminderItem

	if err = ffjson.Unmarshal(buf, &items); err != nil {
		s.log.Printf("[ERROR] %s is corrupted, starting with an empty list: %s\n",
			s.path,
			err.Error())
		return
	}

	s.items = items
	s.sortLocked()
} // func (s *Store) load()

// save writes the full collection to disk. Callers must hold the lock.
func (s *Store) save() {
	var (
		err error
		buf []byte
		out bytes.Buffer
	)

	if s.items == nil {
		// Marshal an empty array rather than "null"
		s.items = make([]objects.ReminderItem, 0)
	}

	if buf, err = ffjson.Marshal(s.items); err != nil {
		s.log.Printf("[ERROR] Cannot serialize reminder list: %s\n",
			err.Error())
		return
	}

	defer ffjson.Pool(buf)

	if err = json.Indent(&out, buf, "", "  "); err != nil {
		s.log.Printf("[CANTHAPPEN] Cannot indent serialized reminder list: %s\n",
			err.Error())
		return
	}

	if err = atomic.WriteFile(s.path, &out); err != nil {
		s.log.Printf("[ERROR] Cannot write %s: %s\n",
			s.path,
			err.Error())
	}
} // func (s *Store) save()

func (s *Store) sortLocked() {
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].FireDate.Before(s.items[j].FireDate)
	})
} // func (s *Store) sortLocked()

func (s *Store) findLocked(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}

	return -1
} // func (s *Store) findLocked(id string) int

// Add creates a new ReminderItem with a fresh ID, stores and persists
// it, and returns the new record.
func (s *Store) Add(note string, fireDate time.Time) objects.ReminderItem {
	var item = objects.ReminderItem{
		ID:       common.GetUUID(),
		Note:     note,
		FireDate: fireDate,
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.items = append(s.items, item)
	s.sortLocked()
	s.save()

	return item
} // func (s *Store) Add(note string, fireDate time.Time) objects.ReminderItem

// Update replaces the note and fire time of the given reminder and
// clears its Fired flag - editing implies re-activation. An unknown ID
// is a no-op; Update returns whether the reminder was found.
func (s *Store) Update(id, note string, fireDate time.Time) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	var idx = s.findLocked(id)

	if idx == -1 {
		s.log.Printf("[DEBUG] Update: no reminder with ID %q\n", id)
		return false
	}

	s.items[idx].Note = note
	s.items[idx].FireDate = fireDate
	s.items[idx].Fired = false
	s.sortLocked()
	s.save()

	return true
} // func (s *Store) Update(id, note string, fireDate time.Time) bool

// MarkFired sets the Fired flag on the given reminder. It returns true
// if this call performed the transition, false if the reminder was
// unknown or had fired already - callers use that to gate the
// notification side effects to exactly once.
func (s *Store) MarkFired(id string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	var idx = s.findLocked(id)

	if idx == -1 {
		s.log.Printf("[DEBUG] MarkFired: no reminder with ID %q\n", id)
		return false
	} else if s.items[idx].Fired {
		return false
	}

	s.items[idx].Fired = true
	s.save()

	return true
} // func (s *Store) MarkFired(id string) bool

// Remove deletes the given reminder. If archive is true, the record is
// merely marked archived and retained in the document; otherwise it is
// removed outright. An unknown ID is a no-op.
func (s *Store) Remove(id string, archive bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	var idx = s.findLocked(id)

	if idx == -1 {
		s.log.Printf("[DEBUG] Remove: no reminder with ID %q\n", id)
		return
	}

	if archive {
		s.items[idx].Archived = true
	} else {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	}

	s.save()
} // func (s *Store) Remove(id string, archive bool)

// Get looks up a reminder by ID and returns a copy of it.
func (s *Store) Get(id string) (objects.ReminderItem, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	var idx = s.findLocked(id)

	if idx == -1 {
		return objects.ReminderItem{}, false
	}

	return s.items[idx], true
} // func (s *Store) Get(id string) (objects.ReminderItem, bool)

// Pending returns all reminders that have neither fired nor been
// archived, ascending by fire time.
func (s *Store) Pending() []objects.ReminderItem {
	s.lock.RLock()
	defer s.lock.RUnlock()

	var list = make([]objects.ReminderItem, 0, len(s.items))

	for _, item := range s.items {
		if item.IsPending() {
			list = append(list, item)
		}
	}

	return list
} // func (s *Store) Pending() []objects.ReminderItem

// Fired returns all fired, non-archived reminders, descending by fire time.
func (s *Store) Fired() []objects.ReminderItem {
	s.lock.RLock()
	defer s.lock.RUnlock()

	var list = make([]objects.ReminderItem, 0, len(s.items))

	for _, item := range s.items {
		if item.Fired && !item.Archived {
			list = append(list, item)
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[j].FireDate.Before(list[i].FireDate)
	})

	return list
} // func (s *Store) Fired() []objects.ReminderItem

// All returns a copy of the full backing collection, archived records
// included, ascending by fire time.
func (s *Store) All() []objects.ReminderItem {
	s.lock.RLock()
	defer s.lock.RUnlock()

	var list = make([]objects.ReminderItem, len(s.items))
	copy(list, s.items)

	return list
} // func (s *Store) All() []objects.ReminderItem
