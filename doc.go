// Package envlog is a small leveled console logger whose verbosity is
// decided once, at construction, from the runtime environment.
//
// Outside of development (NODE_ENV != "development") only errors are
// written. Error and warn lines go to stderr; info and debug lines go to
// stdout. Each line is the prefix, a colon, then the arguments:
//
//	log := envlog.New()
//	log.Error("db", "connection refused", err)   // db: connection refused <err>
//	log.Debug("cache", "miss", key)              // dropped in production
//
// Log infers the severity from the prefix, for code moving off print-style
// logging:
//
//	envlog.LogMessage("ERROR: disk full")         // error
//	envlog.LogMessage("Warning: low memory")      // warn
//	envlog.LogMessage("starting up")              // debug
//
// The inference is a case-insensitive substring match, so "terrorist"
// counts as an error.
package envlog
