// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware keeps a well-formed X-Request-ID sent by the client, or
// generates a UUIDv4, stores it in the request context and echoes it back in
// the response header. LoggerExtractor plugs the id into loggers built by
// package logger so every record logged with the request context carries it.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
package requestid
