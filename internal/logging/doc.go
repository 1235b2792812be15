// Package logging provides slog-based logging for the promptpress CLI.
//
// The default text handler is TTY-aware: it colorizes levels and attribute
// keys when stderr is a terminal and color has not been disabled via
// NO_COLOR or TERM=dumb. A JSON handler is available for machine
// consumption, and MultiHandler fans records out to several sinks (for
// example stderr plus a --log-file).
//
// Verbosity maps from repeated -v flags via [LevelFromVerbosity]; the
// custom [LevelTrace] level below Debug carries per-token retain/drop
// decisions during compression.
package logging
