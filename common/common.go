// /home/eplanet/go/src/github.com/eplanet/reminder/common/common.go
// -*- mode: go; coding: utf-8; -*-
// Created on 24. 08. 2026
// Time-stamp: <2026-08-31 17:40:12>

// Package common provides constants and definitions used throughout
// the application, along with a handful of helpers.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/blicero/krylib"
	"github.com/eplanet/reminder/logdomain"
	"github.com/hashicorp/logutils"
	uuid "github.com/odeke-em/go-uuid"
)

// AppName is the name the application identifies itself by, Version is
// the version number, Debug enables additional logging if true.
const (
	AppName = "Remind"
	Version = "0.4.2"
	Debug   = true
)

// Assorted formats for rendering timestamps.
const (
	TimestampFormat          = "2006-01-02 15:04:05"
	TimestampFormatMinute    = "2006-01-02 15:04"
	TimestampFormatSubSecond = "2006-01-02 15:04:05.0000 MST"
	TimestampFormatTime      = "15:04:05"
	TimestampFormatDate      = "2006-01-02"
)

// DefaultPort is the TCP port the backend listens on unless told otherwise.
const DefaultPort = 7202

// Paths of the directories and files the application uses.
// Tests override these via SetBaseDir.
var (
	BaseDir      = filepath.Join(os.Getenv("HOME"), ".local", "remind")
	ReminderPath = filepath.Join(BaseDir, "reminders.json")
	ConfigPath   = filepath.Join(BaseDir, "config.yaml")
	LogPath      = filepath.Join(BaseDir, "remind.log")
)

// SetBaseDir sets the BaseDir and related paths and tries to create
// the directory if it does not exist already.
func SetBaseDir(path string) error {
	BaseDir = path
	ReminderPath = filepath.Join(BaseDir, "reminders.json")
	ConfigPath = filepath.Join(BaseDir, "config.yaml")
	LogPath = filepath.Join(BaseDir, "remind.log")

	if err := InitApp(); err != nil {
		fmt.Fprintf(os.Stderr,
			"Error initializing application environment: %s\n",
			err.Error())
		return err
	}

	return nil
} // func SetBaseDir(path string) error

// InitApp creates the BaseDir if it does not exist already.
func InitApp() error {
	var (
		err    error
		exists bool
	)

	if exists, err = krylib.Fexists(BaseDir); err != nil {
		return err
	} else if exists {
		return nil
	} else if err = os.MkdirAll(BaseDir, 0700); err != nil {
		return fmt.Errorf("Error creating BaseDir %s: %s",
			BaseDir,
			err.Error())
	}

	return nil
} // func InitApp() error

// LogLevels are the names of the log levels supported by the logger.
var LogLevels = []logutils.LogLevel{
	"TRACE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"CRITICAL",
	"CANTHAPPEN",
	"SILENT",
}

// MinLogLevel is the minimum level a log message must have to get
// written out. If Debug is true, everything is logged.
func MinLogLevel() logutils.LogLevel {
	if Debug {
		return "TRACE"
	}

	return "INFO"
} // func MinLogLevel() logutils.LogLevel

// GetLogger returns a Logger for the given log domain.
// Messages are written both to stdout and the application's logfile.
func GetLogger(dom logdomain.ID) (*log.Logger, error) {
	var (
		err     error
		logfile *os.File
		name    = fmt.Sprintf("%s.%s ", AppName, dom)
	)

	if err = InitApp(); err != nil {
		return nil, fmt.Errorf("Error initializing application environment: %s",
			err.Error())
	} else if logfile, err = os.OpenFile(LogPath, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644); err != nil {
		return nil, fmt.Errorf("Error opening logfile %s: %s",
			LogPath,
			err.Error())
	}

	var writer = io.MultiWriter(os.Stdout, logfile)
	var filter = &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: MinLogLevel(),
		Writer:   writer,
	}

	return log.New(filter, name, log.Ldate|log.Ltime|log.Lshortfile), nil
} // func GetLogger(dom logdomain.ID) (*log.Logger, error)

// GetUUID returns a randomized UUID as a string.
func GetUUID() string {
	return uuid.NewRandom().String()
} // func GetUUID() string
