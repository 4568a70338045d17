package envlog

import (
	"github.com/willibrandon/envlog/configuration"
	"github.com/willibrandon/envlog/core"
	"github.com/willibrandon/envlog/sinks"
)

// config holds the configuration for building a logger.
type config struct {
	environment *configuration.Environment
	threshold   *core.Severity
	sinks       []core.LogEventSink
}

// Option is a functional option for configuring a logger.
type Option func(*config)

func newConfig(options ...Option) *config {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}
	return cfg
}

// WithEnvironment derives the threshold from env instead of the process environment.
func WithEnvironment(env configuration.Environment) Option {
	return func(c *config) {
		c.environment = &env
	}
}

// WithThreshold sets the threshold directly. It takes precedence over
// WithEnvironment.
func WithThreshold(level core.Severity) Option {
	return func(c *config) {
		c.threshold = &level
	}
}

// WithSink adds a sink. Nil sinks are ignored.
func WithSink(sink core.LogEventSink) Option {
	return func(c *config) {
		if sink != nil {
			c.sinks = append(c.sinks, sink)
		}
	}
}

// WithConsole adds a console sink writing to stdout and stderr.
func WithConsole() Option {
	return WithSink(sinks.NewConsoleSink())
}

func (c *config) resolveThreshold() core.Severity {
	switch {
	case c.threshold != nil:
		return *c.threshold
	case c.environment != nil:
		return c.environment.Threshold()
	default:
		return configuration.FromProcess().Threshold()
	}
}

func (c *config) resolveSinks() []core.LogEventSink {
	if len(c.sinks) == 0 {
		return []core.LogEventSink{sinks.NewConsoleSink()}
	}
	out := make([]core.LogEventSink, len(c.sinks))
	copy(out, c.sinks)
	return out
}
