package validate

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"github.com/dmitrymomot/simkit/pkg/i18n"
	"github.com/dmitrymomot/simkit/pkg/logger"
	"github.com/dmitrymomot/simkit/pkg/requestid"
	"github.com/dmitrymomot/simkit/pkg/simulation"
)

// MaxBodySize caps accepted simulation documents.
const MaxBodySize = 1 << 20 // 1 MB

// Service validates simulation documents over HTTP.
type Service struct {
	log      *slog.Logger
	messages *i18n.Catalog
	opts     []simulation.Option
}

// New returns a Service. opts apply to every validated document.
func New(log *slog.Logger, opts ...simulation.Option) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		log:      log.With(logger.Component("validate")),
		messages: i18n.Default(),
		opts:     opts,
	}
}

// Router mounts the service routes:
//
//	GET  /healthz
//	POST /v1/simulations/validate
func (s *Service) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(i18n.Middleware(s.messages))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	})
	r.Route("/v1/simulations", func(r chi.Router) {
		r.Post("/validate", s.validate)
	})
	return r
}

func (s *Service) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	report := Report{RequestID: requestid.FromContext(ctx)}

	format, err := simulation.FormatFromContentType(r.Header.Get("Content-Type"))
	if err != nil {
		report.Error = &Problem{Message: err.Error()}
		s.respond(w, r, http.StatusUnsupportedMediaType, report)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			report.Error = &Problem{Message: ErrBodyTooLarge.Error()}
			s.respond(w, r, http.StatusRequestEntityTooLarge, report)
			return
		}
		report.Error = &Problem{Message: err.Error()}
		s.respond(w, r, http.StatusBadRequest, report)
		return
	}

	opts := append([]simulation.Option{simulation.WithLogger(s.log)}, s.opts...)
	sim, err := simulation.Decode(bytes.NewReader(data), format, opts...)
	switch {
	case err == nil:
		report.Valid = true
		report.Simulation = sim
		s.log.InfoContext(ctx, "simulation accepted", slog.Int("structures", len(sim.Structures)))
		s.respond(w, r, http.StatusOK, report)

	case errors.Is(err, simulation.ErrInvalid):
		report.Error = s.problemFrom(ctx, err)
		s.log.InfoContext(ctx, "simulation rejected",
			slog.String("path", report.Error.Path),
			logger.Kind(report.Error.Kind),
		)
		s.respond(w, r, http.StatusUnprocessableEntity, report)

	default:
		report.Error = &Problem{Message: err.Error()}
		s.log.DebugContext(ctx, "undecodable document", logger.Error(err))
		s.respond(w, r, http.StatusBadRequest, report)
	}
}

func (s *Service) respond(w http.ResponseWriter, r *http.Request, status int, report Report) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		s.log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}
