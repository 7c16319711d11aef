//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package logging sets up the package level loggers shared by the board,
// game and gtp packages. It is intentionally tiny - all it does is wire
// github.com/op/go-logging to stdout and to a log file once the log path
// is known from internal/config.
package logging

import (
	"os"
	"path/filepath"

	"github.com/op/go-logging"

	"github.com/frankkopp/weiqi/internal/config"
)

var mainLog *logging.Logger

// GetLog returns the shared standard logger, creating and configuring it
// on first use. Log level is read from internal/config and can be changed
// afterwards at any time via SetLevel.
func GetLog() *logging.Logger {
	if mainLog != nil {
		return mainLog
	}
	mainLog = logging.MustGetLogger("weiqi")
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(backendFormatter)
	leveled.SetLevel(levelFor(config.LogLevel), "")
	mainLog.SetBackend(leveled)
	return mainLog
}

// GetFileLog returns a logger that appends every line to the file
// <name>.log under config.Settings.Log.LogPath; only when no log path is
// set or that file cannot be opened does it write to stdout instead. Used
// by internal/gtp to keep a full transcript of protocol traffic, the same
// way the teacher's UCI handler keeps a "<exe>_uci.log".
func GetFileLog(name string) *logging.Logger {
	l := logging.MustGetLogger(name)
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{shortfunc} %{message}`)

	backend1 := logging.NewLogBackend(os.Stdout, "", 0)
	backend1Formatter := logging.NewBackendFormatter(backend1, format)
	leveled1 := logging.AddModuleLevel(backend1Formatter)
	leveled1.SetLevel(logging.DEBUG, "")

	logPath, err := func() (string, error) {
		if config.Settings.Log.LogPath == "" {
			return "", os.ErrNotExist
		}
		return config.Settings.Log.LogPath, nil
	}()
	if err != nil {
		l.SetBackend(leveled1)
		return l
	}

	logFile, err := os.OpenFile(filepath.Join(logPath, name+".log"), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		l.SetBackend(leveled1)
		return l
	}
	backend2 := logging.NewLogBackend(logFile, "", 0)
	backend2Formatter := logging.NewBackendFormatter(backend2, format)
	leveled2 := logging.AddModuleLevel(backend2Formatter)
	leveled2.SetLevel(logging.DEBUG, "")
	// file backend takes over once available, matching how the stdout-only
	// backend is replaced rather than combined.
	l.SetBackend(leveled2)
	return l
}

// SetLevel changes the level of the shared standard logger at runtime,
// e.g. after reading a -loglvl command line flag.
func SetLevel(level int) {
	config.LogLevel = level
	if mainLog != nil {
		logging.SetLevel(levelFor(level), "")
	}
}

func levelFor(level int) logging.Level {
	switch {
	case level <= 1:
		return logging.CRITICAL
	case level == 2:
		return logging.ERROR
	case level == 3:
		return logging.WARNING
	case level == 4:
		return logging.NOTICE
	case level == 5:
		return logging.INFO
	default:
		return logging.DEBUG
	}
}
