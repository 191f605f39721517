// /home/eplanet/go/src/github.com/eplanet/reminder/store/01_store_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 29. 08. 2026
// Time-stamp: <2026-08-31 23:58:21>

package store

import (
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/eplanet/reminder/common"
	"github.com/eplanet/reminder/objects"
)

func init() {
	common.SetBaseDir(time.Now().Format("/tmp/remind_store_test_20060102_150405")) // nolint: errcheck
}

const itemCnt = 16

var (
	db    *Store
	items []objects.ReminderItem
)

func TestOpenStore(t *testing.T) {
	var err error

	if db, err = Open(common.ReminderPath); err != nil {
		db = nil
		t.Fatalf("Cannot open store at %s: %s",
			common.ReminderPath,
			err.Error())
	} else if cnt := len(db.All()); cnt != 0 {
		t.Fatalf("Freshly opened store should be empty, has %d items",
			cnt)
	}
} // func TestOpenStore(t *testing.T)

func TestStoreAdd(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var now = time.Now()

	for i := 0; i < itemCnt; i++ {
		var item = db.Add(
			fmt.Sprintf("TEST #%03d", i),
			now.Add(time.Duration(rand.Int63n(int64(time.Hour*168)))))

		if item.ID == "" {
			t.Errorf("Reminder %q has no ID", item.Note)
		} else if item.Fired || item.Archived {
			t.Errorf("Fresh reminder %q should be neither fired nor archived",
				item.Note)
		}

		items = append(items, item)
	}

	if cnt := len(db.All()); cnt != itemCnt {
		t.Errorf("Unexpected number of reminders: %d (expected %d)",
			cnt,
			itemCnt)
	}
} // func TestStoreAdd(t *testing.T)

func TestStorePendingOrder(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var pending = db.Pending()

	if len(pending) != itemCnt {
		t.Fatalf("Unexpected number of pending reminders: %d (expected %d)",
			len(pending),
			itemCnt)
	}

	for i := 1; i < len(pending); i++ {
		if pending[i].FireDate.Before(pending[i-1].FireDate) {
			t.Errorf("Pending reminders are not sorted: %s comes after %s",
				pending[i].FireDate.Format(common.TimestampFormat),
				pending[i-1].FireDate.Format(common.TimestampFormat))
		}
	}
} // func TestStorePendingOrder(t *testing.T)

func TestStoreMarkFired(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var id = items[0].ID

	if !db.MarkFired(id) {
		t.Fatalf("MarkFired on %s should perform the transition", id)
	} else if db.MarkFired(id) {
		t.Errorf("Second MarkFired on %s should be a no-op", id)
	}

	var item, ok = db.Get(id)

	if !ok {
		t.Fatalf("Reminder %s is gone", id)
	} else if !item.Fired {
		t.Errorf("Reminder %s should be fired", id)
	}

	if db.MarkFired("no-such-id") {
		t.Error("MarkFired on an unknown ID should return false")
	}

	var fired = db.Fired()

	if len(fired) != 1 {
		t.Errorf("Unexpected number of fired reminders: %d (expected 1)",
			len(fired))
	}

	for i := 1; i < len(fired); i++ {
		if fired[i].FireDate.After(fired[i-1].FireDate) {
			t.Error("Fired reminders should be sorted descending by fire time")
		}
	}
} // func TestStoreMarkFired(t *testing.T)

// Editing a fired reminder re-activates it.
func TestStoreUpdate(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		id    = items[0].ID
		stamp = time.Now().Add(time.Hour * 336)
	)

	if !db.Update(id, "Changed my mind", stamp) {
		t.Fatalf("Update on %s failed", id)
	}

	var item, ok = db.Get(id)

	if !ok {
		t.Fatalf("Reminder %s is gone", id)
	} else if item.Fired {
		t.Error("Update should reset the Fired flag")
	} else if item.Note != "Changed my mind" {
		t.Errorf("Unexpected note: %q", item.Note)
	} else if !item.FireDate.Equal(stamp) {
		t.Errorf("Unexpected fire time: %s",
			item.FireDate.Format(common.TimestampFormat))
	}

	if db.Update("no-such-id", "Whatever", stamp) {
		t.Error("Update on an unknown ID should be a no-op")
	}
} // func TestStoreUpdate(t *testing.T)

func TestStoreRemove(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	// Soft delete
	db.Remove(items[1].ID, true)

	var item, ok = db.Get(items[1].ID)

	if !ok {
		t.Fatalf("Archived reminder %s should still be in the store",
			items[1].ID)
	} else if !item.Archived {
		t.Errorf("Reminder %s should be archived", items[1].ID)
	}

	for _, r := range db.Pending() {
		if r.ID == items[1].ID {
			t.Errorf("Archived reminder %s shows up in the pending list",
				r.ID)
		}
	}

	// Hard delete
	db.Remove(items[2].ID, false)

	if _, ok = db.Get(items[2].ID); ok {
		t.Errorf("Deleted reminder %s should be gone", items[2].ID)
	}

	if cnt := len(db.All()); cnt != itemCnt-1 {
		t.Errorf("Unexpected number of reminders: %d (expected %d)",
			cnt,
			itemCnt-1)
	}

	// Neither should blow up on an unknown ID.
	db.Remove("no-such-id", true)
	db.Remove("no-such-id", false)
} // func TestStoreRemove(t *testing.T)

// Reopening the store must yield the identical collection.
func TestStoreRoundtrip(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err    error
		before = db.All()
		reload *Store
	)

	if reload, err = Open(common.ReminderPath); err != nil {
		t.Fatalf("Cannot reopen store: %s", err.Error())
	}

	var after = reload.All()

	if len(after) != len(before) {
		t.Fatalf("Reloaded store has %d items, expected %d",
			len(after),
			len(before))
	}

	for i := range before {
		var a, b = before[i], after[i]

		if a.ID != b.ID || a.Note != b.Note || a.Fired != b.Fired || a.Archived != b.Archived {
			t.Errorf("Reloaded reminder %d differs:\n%s\nvs\n%s",
				i,
				a.String(),
				b.String())
		} else if !a.FireDate.Equal(b.FireDate) {
			t.Errorf("Reloaded reminder %d has fire time %s, expected %s",
				i,
				b.FireDate.Format(common.TimestampFormatSubSecond),
				a.FireDate.Format(common.TimestampFormatSubSecond))
		}

		if i > 0 && after[i].FireDate.Before(after[i-1].FireDate) {
			t.Error("Reloaded collection is not sorted ascending by fire time")
		}
	}
} // func TestStoreRoundtrip(t *testing.T)

// A corrupted document must not crash the application, it yields an
// empty store.
func TestStoreMalformed(t *testing.T) {
	var (
		err  error
		path = common.ReminderPath + ".broken"
		junk *Store
	)

	if err = os.WriteFile(path, []byte("{ this is not json"), 0644); err != nil {
		t.Fatalf("Cannot write junk file: %s", err.Error())
	} else if junk, err = Open(path); err != nil {
		t.Fatalf("Opening a malformed store should not fail: %s",
			err.Error())
	} else if cnt := len(junk.All()); cnt != 0 {
		t.Errorf("Malformed store should be empty, has %d items", cnt)
	}
} // func TestStoreMalformed(t *testing.T)

// An older document without the archived field loads with the flag
// defaulting to false.
func TestStoreLegacyDocument(t *testing.T) {
	var (
		err  error
		path = common.ReminderPath + ".legacy"
		old  *Store
	)

	var doc = `[
  {
    "fireDate": "2026-09-15T09:00:00Z",
    "fired": false,
    "id": "legacy-0001",
    "note": "Renew passport"
  }
]`

	if err = os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("Cannot write legacy file: %s", err.Error())
	} else if old, err = Open(path); err != nil {
		t.Fatalf("Cannot open legacy store: %s", err.Error())
	}

	var item, ok = old.Get("legacy-0001")

	if !ok {
		t.Fatal("Legacy reminder was not loaded")
	} else if item.Archived {
		t.Error("Archived should default to false")
	} else if item.Note != "Renew passport" {
		t.Errorf("Unexpected note: %q", item.Note)
	}
} // func TestStoreLegacyDocument(t *testing.T)
