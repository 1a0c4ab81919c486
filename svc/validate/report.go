package validate

import (
	"context"

	"github.com/dmitrymomot/simkit/pkg/i18n"
	"github.com/dmitrymomot/simkit/pkg/simulation"
)

// Report is the response body of the validation endpoint.
type Report struct {
	Valid      bool                   `json:"valid"`
	RequestID  string                 `json:"request_id,omitempty"`
	Simulation *simulation.Simulation `json:"simulation,omitempty"`
	Error      *Problem               `json:"error,omitempty"`
}

// Problem locates why a document was rejected.
// Localized repeats Message in the language negotiated from Accept-Language.
type Problem struct {
	Message   string `json:"message"`
	Localized string `json:"localized,omitempty"`
	Lang      string `json:"lang,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Path      string `json:"path,omitempty"`
	Record    string `json:"record,omitempty"`
	Field     string `json:"field,omitempty"`
	Index     *int   `json:"index,omitempty"`
}

func (s *Service) problemFrom(ctx context.Context, err error) *Problem {
	f, ok := simulation.Explain(err)
	if !ok {
		return &Problem{Message: err.Error()}
	}
	p := &Problem{
		Message: f.Message,
		Kind:    string(f.Kind),
		Path:    f.Path,
		Record:  f.Record,
		Field:   f.Field,
	}
	if f.Index >= 0 {
		idx := f.Index
		p.Index = &idx
	}
	if lang, ok := i18n.Locale(ctx); ok && f.TranslationKey != "" {
		if msg, ok := s.messages.T(lang, f.TranslationKey, f.TranslationValues); ok {
			p.Localized, p.Lang = msg, lang
		}
	}
	return p
}
