package interval

import "github.com/sirupsen/logrus"

const panicNilLogger = "interval: WithLogger: logger must not be nil"

// Defaults.
const (
	// DefaultPreserveOrder sorts the caller's slice in place when false.
	DefaultPreserveOrder = false
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	preserveOrder bool               // DefaultPreserveOrder
	logger        logrus.FieldLogger // nil ⇒ silent
}

// WithPreserveOrder sorts a private copy, leaving the input slice as given.
func WithPreserveOrder() Option {
	return func(o *Options) { o.preserveOrder = true }
}

// WithInPlace restores the default in-place sort.
func WithInPlace() Option {
	return func(o *Options) { o.preserveOrder = false }
}

// WithLogger routes one Debug entry per sweep to l. Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults, last writer wins.
func gatherOptions(opts ...Option) Options {
	o := Options{preserveOrder: DefaultPreserveOrder}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func (o Options) debug(msg string, fields logrus.Fields) {
	if o.logger == nil {
		return
	}
	o.logger.WithFields(fields).Debug(msg)
}
