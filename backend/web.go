// /home/eplanet/go/src/github.com/eplanet/reminder/backend/web.go
// -*- mode: go; coding: utf-8; -*-
// Created on 28. 08. 2026
// Time-stamp: <2026-08-31 22:58:13>

package backend

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/eplanet/reminder/objects"
	"github.com/gorilla/mux"
	"github.com/pquerna/ffjson/ffjson"
)

func (d *Daemon) initWebHandlers() error {
	d.router.HandleFunc("/reminder/add", d.handleReminderAdd)
	d.router.HandleFunc("/reminder/pending", d.handleReminderGetPending)
	d.router.HandleFunc("/reminder/fired", d.handleReminderGetFired)
	d.router.HandleFunc("/reminder/all", d.handleReminderGetAll)
	d.router.HandleFunc("/reminder/{id:[0-9a-fA-F-]+}/update", d.handleReminderUpdate)
	d.router.HandleFunc("/reminder/{id:[0-9a-fA-F-]+}/delete", d.handleReminderDelete)
	d.router.HandleFunc("/parse/preview", d.handleParsePreview)
	d.router.HandleFunc("/sound/preview", d.handleSoundPreview)
	d.router.HandleFunc("/config", d.handleConfigGet)
	d.router.HandleFunc("/config/update", d.handleConfigUpdate)

	return nil
} // func (d *Daemon) initWebHandlers() error

func (d *Daemon) serveHTTP() {
	var err error

	defer d.log.Println("[INFO] Web server is shutting down")

	d.log.Printf("[INFO] Web interface is going online at %s\n", d.web.Addr)

	if err = d.web.ListenAndServe(); err != nil {
		if err != http.ErrServerClosed {
			d.log.Printf("[ERROR] ListenAndServe returned an error: %s\n",
				err.Error())
		} else {
			d.log.Println("[INFO] HTTP Server has shut down.")
		}
	}
} // func (d *Daemon) serveHTTP()

// handleReminderAdd creates a reminder either from a free-form input
// string ("input") or from an explicit note plus RFC3339 timestamp
// ("note", "timestamp").
func (d *Daemon) handleReminderAdd(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err                     error
		item                    objects.ReminderItem
		input, note, tstr, msg  string
		stamp                   time.Time
		response                = objects.Response{ID: d.getID()}
	)

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		response.Message = err.Error()
		goto SEND_RESPONSE
	}

	input = r.PostFormValue("input")

	if input != "" {
		if item, err = d.ScheduleInput(input); err != nil {
			msg = fmt.Sprintf("Cannot parse %q: %s",
				input,
				err.Error())
			d.log.Printf("[DEBUG] %s\n", msg)
			response.Message = msg
			goto SEND_RESPONSE
		}

		response.Message = item.ID
		response.Status = true
		goto SEND_RESPONSE
	}

	note = r.PostFormValue("note")
	tstr = r.PostFormValue("timestamp")

	if stamp, err = time.Parse(time.RFC3339, tstr); err != nil {
		msg = fmt.Sprintf("Cannot parse time stamp %q: %s",
			tstr,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	item = d.ScheduleReminder(note, stamp)

	response.Message = item.ID
	response.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &response)
} // func (d *Daemon) handleReminderAdd(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleReminderGetPending(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	d.sendReminderListJSON(w, d.db.Pending())
} // func (d *Daemon) handleReminderGetPending(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleReminderGetFired(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	d.sendReminderListJSON(w, d.db.Fired())
} // func (d *Daemon) handleReminderGetFired(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleReminderGetAll(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	d.sendReminderListJSON(w, d.db.All())
} // func (d *Daemon) handleReminderGetAll(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleReminderUpdate(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err             error
		id, tstr, msg   string
		note            string
		stamp           time.Time
		vars            map[string]string
		res             = objects.Response{ID: d.getID()}
	)

	vars = mux.Vars(r)
	id = vars["id"]

	if err = r.ParseForm(); err != nil {
		msg = fmt.Sprintf("Cannot parse form data: %s", err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	}

	note = r.FormValue("note")
	tstr = r.FormValue("timestamp")

	if stamp, err = time.Parse(time.RFC3339, tstr); err != nil {
		msg = fmt.Sprintf("Cannot parse timestamp %q: %s",
			tstr,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	}

	d.UpdateReminder(id, note, stamp)

	res.Status = true
	res.Message = "OK"

SEND_RESPONSE:
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleReminderUpdate(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleReminderDelete(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		vars = mux.Vars(r)
		id   = vars["id"]
		res  = objects.Response{ID: d.getID()}
	)

	d.RemoveReminder(id)

	res.Status = true
	res.Message = fmt.Sprintf("Reminder %s was deleted", id)

	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleReminderDelete(w http.ResponseWriter, r *http.Request)

// handleParsePreview dry-runs the parser so a client can show the user
// what a given input would schedule, as they type.
func (d *Daemon) handleParsePreview(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err    error
		input  string
		parsed *objects.ParsedReminder
		res    = objects.Response{ID: d.getID()}
	)

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		res.Message = err.Error()
		goto SEND_RESPONSE
	}

	input = r.FormValue("input")

	if parsed = d.parser.Parse(input); parsed == nil {
		res.Message = fmt.Sprintf("Cannot parse %q", input)
		goto SEND_RESPONSE
	}

	res.Status = true
	res.Message = fmt.Sprintf("%s\t%s",
		parsed.Date.Format(time.RFC3339),
		parsed.Note)

SEND_RESPONSE:
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleParsePreview(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleSoundPreview(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	d.PreviewSound()

	var res = objects.Response{
		ID:      d.getID(),
		Status:  true,
		Message: d.cfg.Selection().DisplayName(),
	}

	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleSoundPreview(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleConfigGet(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err  error
		buf  []byte
		data = d.cfg.Snapshot()
	)

	if buf, err = ffjson.Marshal(&data); err != nil {
		d.log.Printf("[ERROR] Cannot serialize settings: %s\n",
			err.Error())
		return
	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) handleConfigGet(w http.ResponseWriter, r *http.Request)

// handleConfigUpdate applies the settings fields present in the form;
// fields that are absent keep their value.
func (d *Daemon) handleConfigUpdate(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err  error
		flag bool
		msg  string
		res  = objects.Response{ID: d.getID()}
	)

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		res.Message = err.Error()
		goto SEND_RESPONSE
	}

	if v := r.FormValue("sound"); v != "" {
		if !objects.KnownSound(v) {
			msg = fmt.Sprintf("Unknown sound %q", v)
			d.log.Printf("[ERROR] %s\n", msg)
			res.Message = msg
			goto SEND_RESPONSE
		}

		if v == objects.SoundCustom {
			d.cfg.SetCustomSound(r.FormValue("custom_sound_path"))
		} else {
			d.cfg.SetSound(v)
		}
	}

	if v := r.FormValue("archive_on_delete"); v != "" {
		if flag, err = strconv.ParseBool(v); err != nil {
			msg = fmt.Sprintf("Cannot parse archive_on_delete %q: %s",
				v,
				err.Error())
			d.log.Printf("[ERROR] %s\n", msg)
			res.Message = msg
			goto SEND_RESPONSE
		}
		d.cfg.SetArchiveOnDelete(flag)
	}

	if v := r.FormValue("auto_mark_expired"); v != "" {
		if flag, err = strconv.ParseBool(v); err != nil {
			msg = fmt.Sprintf("Cannot parse auto_mark_expired %q: %s",
				v,
				err.Error())
			d.log.Printf("[ERROR] %s\n", msg)
			res.Message = msg
			goto SEND_RESPONSE
		}
		d.cfg.SetAutoMarkExpired(flag)
	}

	res.Status = true
	res.Message = "OK"

SEND_RESPONSE:
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleConfigUpdate(w http.ResponseWriter, r *http.Request)

//////////////////////////////////////////////////////////////////////////////////////////////////
/// Helpers //////////////////////////////////////////////////////////////////////////////////////
//////////////////////////////////////////////////////////////////////////////////////////////////

func (d *Daemon) sendReminderListJSON(w http.ResponseWriter, reminders []objects.ReminderItem) {
	var (
		err error
		buf []byte
	)

	if buf, err = ffjson.Marshal(reminders); err != nil {
		d.log.Printf("[ERROR] Cannot serialize Reminder list: %s\n",
			err.Error())
		return
	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) sendReminderListJSON(w http.ResponseWriter, reminders []objects.ReminderItem)

func (d *Daemon) sendResponseJSON(w http.ResponseWriter, res *objects.Response) {
	var (
		err error
		buf []byte
	)

	if buf, err = ffjson.Marshal(res); err != nil {
		d.log.Printf("[ERROR] Cannot serialize Response object %#v: %s\n",
			res,
			err.Error())
		return
	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) sendResponseJSON(w http.ResponseWriter, res *objects.Response)
