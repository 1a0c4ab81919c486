// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run binds the configured address, serves until the context is canceled or
// SIGINT/SIGTERM arrives, then drains in-flight requests within
// Config.ShutdownTimeout. Settings load from HTTP_* environment variables
// through package config.
//
//	cfg, _ := config.Load[httpserver.Config]()
//	srv := httpserver.New(cfg, log)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server error", logger.Error(err))
//	}
package httpserver
