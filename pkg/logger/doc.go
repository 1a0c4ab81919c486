// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// New picks a text or JSON handler, applies static attributes and, when
// ContextExtractor callbacks are registered, wraps the handler so every log
// call picks up request-scoped values such as request ids.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "simcheck"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.WarnContext(ctx, "simulation rejected",
//	    logger.Record("Simulation"),
//	    logger.Field("structures"),
//	    logger.Index(2),
//	)
//
// Helpers such as Error and Index return an empty slog.Attr for nil or
// meaningless input, so they can be passed unconditionally.
package logger
