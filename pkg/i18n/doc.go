// Package i18n renders validation messages in the client's language.
//
// A Catalog maps languages to message templates keyed by the TranslationKey
// of validator errors ("validation.planar", "validation.unique_names", ...).
// Templates use named placeholders filled from TranslationValues:
//
//	c := i18n.Default()
//	msg, ok := c.T("de", "validation.planar", map[string]any{"record": "FluxMonitor", "size": size})
//
// Middleware negotiates Accept-Language against the catalog languages and
// stores the match for Locale.
package i18n
