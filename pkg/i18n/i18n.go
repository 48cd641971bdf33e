package i18n

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported interface language.
type Lang string

const (
	LangEN Lang = "en"
	LangAR Lang = "ar"

	// Default is used whenever a request carries no usable language hint.
	Default = LangEN
)

// String implements fmt.Stringer.
func (l Lang) String() string {
	return string(l)
}

// IsValid reports whether the language is supported.
func (l Lang) IsValid() bool {
	return l == LangEN || l == LangAR
}

// Tag returns the BCP 47 tag for number and text formatting.
func (l Lang) Tag() language.Tag {
	if l == LangAR {
		return language.Arabic
	}
	return language.English
}

// Parse normalizes raw input ("ar", "ar-KW", "EN") into a supported Lang,
// falling back to Default.
func Parse(value string) Lang {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if idx := strings.IndexAny(normalized, "-_,;"); idx > 0 {
		normalized = normalized[:idx]
	}
	switch normalized {
	case "ar":
		return LangAR
	case "en":
		return LangEN
	default:
		return Default
	}
}

type ctxKey struct{}

// WithLang stores the active language on the context.
func WithLang(ctx context.Context, lang Lang) context.Context {
	if !lang.IsValid() {
		lang = Default
	}
	return context.WithValue(ctx, ctxKey{}, lang)
}

// FromContext returns the active language, defaulting when absent.
func FromContext(ctx context.Context) Lang {
	if ctx == nil {
		return Default
	}
	if lang, ok := ctx.Value(ctxKey{}).(Lang); ok && lang.IsValid() {
		return lang
	}
	return Default
}
