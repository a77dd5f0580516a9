// Package log is a small leveled logger built on [log/slog].
//
// A [Logger] is an immutable value: [Make] creates one from functional
// options and [Logger.Wrap] or [Logger.With] derive new ones, so a logger can
// be handed to a component without that component affecting anyone else.
// The zero Logger discards everything, which lets library code accept a
// Logger option and log unconditionally.
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText),
//		log.WithPretty(false))
//	logger.TraceContext(ctx, "parse complete", slog.Int("statements", n))
//
// Besides the four slog levels the package defines [LevelTrace] for the
// interpreter's step-by-step diagnostics.
//
// The package-level functions ([Info], [ErrorContext], ...) log through a
// process-wide default logger that [Config] reconfigures; the command line
// uses this to apply --log-* flags while parsing.
package log
