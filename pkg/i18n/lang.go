package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength bounds the header length we are willing to parse.
const maxAcceptLanguageLength = 4096

type weightedLang struct {
	lang string
	q    float64
}

func parseAcceptLanguage(header string) []weightedLang {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var langs []weightedLang
	for part := range strings.SplitSeq(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || tag == "*" {
			continue
		}
		q := 1.0
		if qs, found := strings.CutPrefix(strings.TrimSpace(params), "q="); found {
			if v, err := strconv.ParseFloat(qs, 64); err == nil && v >= 0 && v <= 1 {
				q = v
			}
		}
		if q == 0 {
			continue
		}
		langs = append(langs, weightedLang{lang: tag, q: q})
	}

	slices.SortStableFunc(langs, func(a, b weightedLang) int {
		return cmp.Compare(b.q, a.q)
	})
	return langs
}

// Negotiate picks the best supported language for an Accept-Language header.
// Exact tags win over base-language matches ("de-AT" falls back to "de").
// ok is false when nothing matches.
func Negotiate(header string, supported []string) (lang string, ok bool) {
	if header == "" || len(supported) == 0 {
		return "", false
	}
	langs := parseAcceptLanguage(header)

	for _, l := range langs {
		if slices.Contains(supported, l.lang) {
			return l.lang, true
		}
	}
	for _, l := range langs {
		if base, _, found := strings.Cut(l.lang, "-"); found && slices.Contains(supported, base) {
			return base, true
		}
	}
	return "", false
}
