package i18n

import (
	"embed"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when a request does not negotiate a supported language.
const DefaultLanguage = "en"

//go:embed locales/validation.yaml
var locales embed.FS

// Catalog holds message templates per language, keyed by dotted path
// such as "validation.planar". A Catalog is read-only after parsing and
// safe for concurrent use.
type Catalog struct {
	messages map[string]map[string]string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog of validation messages shipped with the module.
func Default() *Catalog {
	defaultOnce.Do(func() {
		data, err := locales.ReadFile("locales/validation.yaml")
		if err != nil {
			panic(err)
		}
		defaultCatalog = MustParseYAML(data)
	})
	return defaultCatalog
}

// ParseYAML builds a catalog from a document with one top-level key per
// language. Nested maps are flattened into dotted keys.
func ParseYAML(data []byte) (*Catalog, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParseCatalog, err)
	}
	if len(doc) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{messages: make(map[string]map[string]string, len(doc))}
	for lang, tree := range doc {
		node, ok := tree.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrParseCatalog, lang, tree)
		}
		flat := make(map[string]string)
		if err := flatten("", node, flat); err != nil {
			return nil, fmt.Errorf("%w: language %q: %v", ErrParseCatalog, lang, err)
		}
		c.messages[strings.ToLower(lang)] = flat
	}
	return c, nil
}

// MustParseYAML is like ParseYAML but panics on error.
func MustParseYAML(data []byte) *Catalog {
	c, err := ParseYAML(data)
	if err != nil {
		panic(err)
	}
	return c
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("key %q: unsupported value %T", key, v)
		}
	}
	return nil
}

// Languages returns the catalog languages, sorted.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.messages))
	for lang := range c.messages {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// T renders the template for key in lang, substituting "%{name}"
// placeholders from values. ok is false when lang or key is unknown.
func (c *Catalog) T(lang, key string, values map[string]any) (msg string, ok bool) {
	tmpl, ok := c.messages[strings.ToLower(lang)][key]
	if !ok {
		return "", false
	}
	return render(tmpl, values), true
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// render keeps placeholders with no matching value.
func render(tmpl string, values map[string]any) string {
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		v, ok := values[match[2:len(match)-1]]
		if !ok {
			return match
		}
		return format(v)
	})
}

func format(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		quoted := make([]string, len(val))
		for i, s := range val {
			quoted[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case fmt.Stringer:
		return val.String()
	}
	return fmt.Sprint(v)
}
