package i18n

import (
	"context"
	"net/http"
)

type localeKey struct{}

// WithLocale stores a negotiated language in ctx.
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeKey{}, lang)
}

// Locale returns the language negotiated for the request.
// ok is false when the client did not ask for a supported language.
func Locale(ctx context.Context) (lang string, ok bool) {
	lang, ok = ctx.Value(localeKey{}).(string)
	return lang, ok
}

// Middleware negotiates the Accept-Language header against the catalog
// languages and stores the match in the request context.
func Middleware(c *Catalog) func(http.Handler) http.Handler {
	supported := c.Languages()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if lang, ok := Negotiate(r.Header.Get("Accept-Language"), supported); ok {
				r = r.WithContext(WithLocale(r.Context(), lang))
			}
			next.ServeHTTP(w, r)
		})
	}
}
