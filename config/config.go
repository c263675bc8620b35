// Package config holds the process-wide settings that drive sxcv's
// debugging behaviour: a keyword set parsed once from the SXCV environment
// variable, and a mutable debug flag.
//
// The state lives in an explicit Config object rather than bare globals so
// tests can build isolated instances, but a package-level default built
// from the real environment keeps the script-style calls
// (config.DebugOn() and friends) working the way the labs expect.
//
// # Environment Keywords
//
// SXCV is a whitespace-separated, case-insensitive keyword list. The
// recognised keywords are:
//
//   - debug: start with the debug flag on, enabling debug image displays.
//   - sixel16: debug displays render as sixel graphics in the terminal,
//     quantised to 16 colour levels.
//   - sixel256: as sixel16 but with 256 levels.
//
// Unrecognised keywords are ignored, never errors. Sixel keywords have no
// effect on Windows, which lacks a terminal that can show them.
package config

import (
	"os"
	"runtime"
	"strings"
)

// EnvVar is the name of the environment variable consulted at start-up.
const EnvVar = "SXCV"

// Names of the keywords recognised in EnvVar.
const (
	KeywordDebug    = "debug"
	KeywordSixel16  = "sixel16"
	KeywordSixel256 = "sixel256"
)

// Config is the debugging configuration for one logical thread of control.
// The keyword set and OS family are fixed at construction; only the debug
// flag mutates. No locking is provided: sxcv assumes the single-threaded
// scripting use the course is built around.
type Config struct {
	keywords map[string]bool
	goos     string
	debug    bool
}

// New parses an environment-variable value into a Config. The value is
// lower-cased and split on whitespace; an empty or missing value simply
// yields no keywords. goos selects operating-system-specific behaviour
// and is normally runtime.GOOS.
func New(env, goos string) *Config {
	c := &Config{
		keywords: make(map[string]bool),
		goos:     goos,
	}
	for _, kw := range strings.Fields(strings.ToLower(env)) {
		c.keywords[kw] = true
	}
	c.debug = c.keywords[KeywordDebug]
	return c
}

// FromEnv builds a Config from the real process environment and host OS.
func FromEnv() *Config {
	return New(os.Getenv(EnvVar), runtime.GOOS)
}

// Has reports whether the given keyword was present in the environment.
func (c *Config) Has(keyword string) bool { return c.keywords[keyword] }

// GOOS returns the operating system family this Config was built for.
func (c *Config) GOOS() string { return c.goos }

// DebugSet sets the debug flag.
func (c *Config) DebugSet(v bool) { c.debug = v }

// Debugging reports the current state of the debug flag.
func (c *Config) Debugging() bool { return c.debug }

// DebugOn turns the debug flag on.
func (c *Config) DebugOn() { c.DebugSet(true) }

// DebugOff turns the debug flag off.
func (c *Config) DebugOff() { c.DebugSet(false) }

// std is the process-wide default, initialised once at start-up.
var std = FromEnv()

// Default returns the process-wide Config built from the environment when
// the program started.
func Default() *Config { return std }

// DebugSet sets the default Config's debug flag.
func DebugSet(v bool) { std.DebugSet(v) }

// Debugging reports the default Config's debug flag.
func Debugging() bool { return std.Debugging() }

// DebugOn turns on the default Config's debug flag.
func DebugOn() { std.DebugOn() }

// DebugOff turns off the default Config's debug flag.
func DebugOff() { std.DebugOff() }
