// /home/eplanet/go/src/github.com/eplanet/reminder/clients/clientlib/lib.go
// -*- mode: go; coding: utf-8; -*-
// Created on 29. 08. 2026
// Time-stamp: <2026-08-31 23:21:30>

// Package clientlib provides the basic framework for building clients
// that talk to the backend.
package clientlib

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/eplanet/reminder/common"
	"github.com/eplanet/reminder/logdomain"
	"github.com/eplanet/reminder/objects"
	"github.com/pquerna/ffjson/ffjson"
)

const (
	addPath     = "/reminder/add"
	pendingPath = "/reminder/pending"
	firedPath   = "/reminder/fired"
)

// Client is the basic implementation of a client, it implements the
// fundamental communication with the backend.
type Client struct {
	Server *url.URL
	Client http.Client
	log    *log.Logger
}

// NewClient creates a new Client.
func NewClient(srv string) (*Client, error) {
	var (
		err error
		c   = &Client{
			Client: http.Client{
				Timeout: time.Second * 10,
			},
		}
	)

	if c.log, err = common.GetLogger(logdomain.Client); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Cannot create Logger: %s\n",
			err.Error())
		return nil, err
	} else if c.Server, err = url.Parse(srv); err != nil {
		c.log.Printf("[ERROR] Cannot parse URL %q: %s\n",
			srv,
			err.Error())
		return nil, err
	}

	c.Server.Scheme = "http"

	return c, nil
} // func NewClient(srv string) (*Client, error)

// GetLogger returns the Client's logger.
func (c *Client) GetLogger() *log.Logger {
	return c.log
} // func (c *Client) GetLogger() *log.Logger

func (c *Client) urlFor(path string) string {
	var u = *c.Server
	u.Path = path
	return u.String()
} // func (c *Client) urlFor(path string) string

// SubmitReminder submits a free-form input string - note plus time
// expression - for scheduling and returns the backend's Response.
func (c *Client) SubmitReminder(input string) (*objects.Response, error) {
	var (
		err    error
		msg    string
		buf    []byte
		hres   *http.Response
		ores   objects.Response
		values = make(url.Values)
	)

	values["input"] = []string{input}

	if hres, err = c.Client.PostForm(c.urlFor(addPath), values); err != nil {
		c.log.Printf("[ERROR] Failed to POST Reminder to %s: %s\n",
			c.Server,
			err.Error())
		return nil, err
	}

	defer hres.Body.Close() // nolint: errcheck

	if hres.StatusCode != http.StatusOK {
		msg = fmt.Sprintf("Unexpected status from %s: %s",
			c.Server,
			hres.Status)
		c.log.Printf("[ERROR] %s\n", msg)
		return nil, fmt.Errorf("%s", msg)
	} else if buf, err = io.ReadAll(hres.Body); err != nil {
		c.log.Printf("[ERROR] Cannot read response from %s: %s\n",
			c.Server,
			err.Error())
		return nil, err
	} else if err = ffjson.Unmarshal(buf, &ores); err != nil {
		c.log.Printf("[ERROR] Cannot parse response from %s: %s\n",
			c.Server,
			err.Error())
		return nil, err
	}

	return &ores, nil
} // func (c *Client) SubmitReminder(input string) (*objects.Response, error)

// FetchPending retrieves the pending reminders from the backend.
func (c *Client) FetchPending() ([]objects.ReminderItem, error) {
	return c.fetchList(pendingPath)
} // func (c *Client) FetchPending() ([]objects.ReminderItem, error)

// FetchFired retrieves the fired reminders from the backend.
func (c *Client) FetchFired() ([]objects.ReminderItem, error) {
	return c.fetchList(firedPath)
} // func (c *Client) FetchFired() ([]objects.ReminderItem, error)

func (c *Client) fetchList(path string) ([]objects.ReminderItem, error) {
	var (
		err  error
		buf  []byte
		hres *http.Response
		list []objects.ReminderItem
	)

	if hres, err = c.Client.Get(c.urlFor(path)); err != nil {
		c.log.Printf("[ERROR] Failed to GET %s from %s: %s\n",
			path,
			c.Server,
			err.Error())
		return nil, err
	}

	defer hres.Body.Close() // nolint: errcheck

	if hres.StatusCode != http.StatusOK {
		var msg = fmt.Sprintf("Unexpected status from %s: %s",
			c.Server,
			hres.Status)
		c.log.Printf("[ERROR] %s\n", msg)
		return nil, fmt.Errorf("%s", msg)
	} else if buf, err = io.ReadAll(hres.Body); err != nil {
		c.log.Printf("[ERROR] Cannot read response from %s: %s\n",
			c.Server,
			err.Error())
		return nil, err
	} else if err = ffjson.Unmarshal(buf, &list); err != nil {
		c.log.Printf("[ERROR] Cannot parse reminder list from %s: %s\n",
			c.Server,
			err.Error())
		return nil, err
	}

	return list, nil
} // func (c *Client) fetchList(path string) ([]objects.ReminderItem, error)
