// /home/eplanet/go/src/github.com/eplanet/reminder/clients/remindcli/main.go
// -*- mode: go; coding: utf-8; -*-
// Created on 29. 08. 2026
// Time-stamp: <2026-08-31 23:29:04>

// remindcli is a small command line client: it submits a free-form
// reminder to the backend, or lists the pending / fired reminders.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/eplanet/reminder/clients/clientlib"
	"github.com/eplanet/reminder/common"
	"github.com/eplanet/reminder/objects"
)

func main() {
	var (
		err        error
		cl         *clientlib.Client
		addr, list string
	)

	flag.StringVar(
		&addr,
		"server",
		fmt.Sprintf("localhost:%d", common.DefaultPort),
		"Address of the backend")

	flag.StringVar(
		&list,
		"list",
		"",
		"List reminders instead of adding one (pending or fired)")

	flag.Parse()

	if cl, err = clientlib.NewClient("//" + addr); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Cannot create client: %s\n",
			err.Error())
		os.Exit(1)
	}

	switch list {
	case "":
		submit(cl, strings.Join(flag.Args(), " "))
	case "pending":
		show(cl, false)
	case "fired":
		show(cl, true)
	default:
		fmt.Fprintf(
			os.Stderr,
			"Unknown list %q, must be pending or fired\n",
			list)
		os.Exit(1)
	}
}

func submit(cl *clientlib.Client, input string) {
	if strings.TrimSpace(input) == "" {
		fmt.Fprintln(
			os.Stderr,
			`Usage: remindcli <note and time expression, e.g. "Buy milk in 2h">`)
		os.Exit(1)
	}

	var (
		err error
		res *objects.Response
	)

	if res, err = cl.SubmitReminder(input); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Cannot submit reminder: %s\n",
			err.Error())
		os.Exit(1)
	} else if !res.Status {
		fmt.Fprintf(
			os.Stderr,
			"Backend rejected reminder: %s\n",
			res.Message)
		os.Exit(1)
	}

	fmt.Printf("Scheduled reminder %s\n", res.Message)
}

func show(cl *clientlib.Client, fired bool) {
	var (
		err   error
		items []objects.ReminderItem
	)

	if fired {
		items, err = cl.FetchFired()
	} else {
		items, err = cl.FetchPending()
	}

	if err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Cannot fetch reminders: %s\n",
			err.Error())
		os.Exit(1)
	}

	for i := range items {
		fmt.Printf("%s  %s\n",
			items[i].FireDate.Format(common.TimestampFormatMinute),
			items[i].Note)
	}
}
