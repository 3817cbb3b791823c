// Copyright 2024 The PGDL Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package clog provides a logging interface for pgdl packages.
//
// Library packages never print directly; they log through clog and the
// binary decides which backend receives the messages (see clog/glog).
package clog

import (
	"log"
	"os"
	"sync"
)

// Logger is the clog logging interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// leveled is implemented by backends that manage verbosity themselves.
type leveled interface {
	V(level int) bool
}

var (
	mu        sync.RWMutex
	logger    Logger = stdlog{l: log.New(os.Stderr, "", log.LstdFlags)}
	verbosity int
)

// SetLogger set the clog logging implementation. A nil logger discards everything.
func SetLogger(l Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

func current() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// V returns whether the current clog verbosity is above the specified level.
func V(level int) bool {
	if lv, ok := current().(leveled); ok {
		return lv.V(level)
	}
	mu.RLock()
	defer mu.RUnlock()
	return verbosity >= level
}

// SetV sets the clog verbosity level.
func SetV(level int) {
	mu.Lock()
	verbosity = level
	mu.Unlock()
}

// Infof logs information level messages.
func Infof(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Infof(format, args...)
	}
}

// Warningf logs warning level messages.
func Warningf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Warningf(format, args...)
	}
}

// Errorf logs error level messages.
func Errorf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Errorf(format, args...)
	}
}

// Fatalf logs fatal messages and terminates the program.
func Fatalf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Fatalf(format, args...)
	}
}

// stdlog wraps the standard library logger.
type stdlog struct {
	l *log.Logger
}

func (s stdlog) Infof(format string, args ...interface{})    { s.l.Printf(format, args...) }
func (s stdlog) Warningf(format string, args ...interface{}) { s.l.Printf("WARN: "+format, args...) }
func (s stdlog) Errorf(format string, args ...interface{})   { s.l.Printf("ERROR: "+format, args...) }
func (s stdlog) Fatalf(format string, args ...interface{})   { s.l.Fatalf("FATAL: "+format, args...) }
