package middleware

import (
	"context"
	"net/http"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

// LocaleKey stores the matched UI locale in the request context.
var LocaleKey = localeContextKey{}

// supportedLocales lists the languages the scene editor ships display
// strings for. Prompts themselves are always compiled in English.
var supportedLocales = []language.Tag{
	language.English, // default
	language.German,
	language.Spanish,
	language.Japanese,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// I18N resolves the caller's preferred UI locale from the X-Locale header
// or Accept-Language and stores its canonical tag in the context.
func I18N(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), LocaleKey, matchLocale(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func matchLocale(r *http.Request) string {
	accept := r.Header.Get("Accept-Language")
	if v := r.Header.Get("X-Locale"); v != "" {
		accept = v
	}
	tag, _ := language.MatchStrings(localeMatcher, accept)
	base, _ := tag.Base()
	return base.String()
}

// LocaleFromContext returns the matched locale, defaulting to English.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok && v != "" {
		return v
	}
	return "en"
}
