package i18n

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/validkit/pkg/logger"
)

type localeContextKey struct{}

// SetLocale stores the preferred locale of the current request in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLanguage
	}
	return locale
}

// LocaleExtractor adds the locale stored with SetLocale to log records
// written with a context. Contexts without a locale add nothing.
func LocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		locale, _ := ctx.Value(localeContextKey{}).(string)
		if locale == "" {
			return slog.Attr{}, false
		}
		return logger.Language(locale), true
	}
}
