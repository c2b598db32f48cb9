package tiling

import "github.com/sirupsen/logrus"

const panicNilLogger = "tiling: WithLogger: logger must not be nil"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; callers configure through WithX constructors.
type Options struct {
	logger logrus.FieldLogger // nil ⇒ silent
}

// WithLogger routes one Debug entry per call (board size and result) to l.
// Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults, last writer wins.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// debug records the outcome of a counting call when a logger is configured.
func (o Options) debug(op string, n, result int) {
	if o.logger == nil {
		return
	}
	o.logger.WithFields(logrus.Fields{
		"op":     op,
		"n":      n,
		"result": result,
	}).Debug("tiling: board counted")
}
