// Package config carries the solver's ambient configuration: a logger and a
// verbosity switch. spec.md's Non-goals exclude configuration files and
// environment variables, so that's deliberately all there is here.
package config

import "github.com/sirupsen/logrus"

// Config is threaded through the solver the way EricR-saturday threads its
// own Config through — just with a *logrus.Logger in place of the standard
// library's *log.Logger.
type Config struct {
	Logger  *logrus.Logger
	Verbose bool
}

// New returns a Config with a logger writing to stderr at Info level. The
// hot path (unit detection, satisfaction bookkeeping) only logs at Debug,
// so a default Config is silent there.
func New() *Config {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	return &Config{Logger: logger}
}

// SetVerbose raises the logger to Debug level, surfacing the solver's
// per-assignment trace.
func (c *Config) SetVerbose(v bool) {
	c.Verbose = v
	if v {
		c.Logger.SetLevel(logrus.DebugLevel)
	} else {
		c.Logger.SetLevel(logrus.InfoLevel)
	}
}
