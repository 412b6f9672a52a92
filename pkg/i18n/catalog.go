package i18n

import (
	"context"

	"github.com/dmitrymomot/validkit/pkg/logger"
)

// Catalog is a read-only view of one language of a Translator. It serves
// raw message templates, so it can back validator.WithTemplates or
// Engine.Localize directly.
type Catalog struct {
	t    *Translator
	lang string
}

// Catalog returns the catalog for the language negotiated from lang.
func (t *Translator) Catalog(lang string) *Catalog {
	return &Catalog{t: t, lang: t.Match(lang)}
}

// CatalogContext returns the catalog for the locale stored in ctx with
// SetLocale.
func (t *Translator) CatalogContext(ctx context.Context) *Catalog {
	return t.Catalog(GetLocale(ctx))
}

// Language returns the negotiated language of the catalog.
func (c *Catalog) Language() string {
	return c.lang
}

// Template returns the raw template for key. Keys missing in the catalog
// language are looked up in the default language before giving up.
func (c *Catalog) Template(key string) (string, bool) {
	t := c.t
	t.mu.RLock()
	tmpl, ok := t.lookup(c.lang, key)
	if !ok && c.lang != t.defaultLang {
		tmpl, ok = t.lookup(t.defaultLang, key)
	}
	t.mu.RUnlock()

	if !ok && t.missingLogMode {
		t.logger.Warn("catalog template not found",
			logger.Component("i18n"),
			logger.Language(c.lang),
			logger.Key(key),
		)
	}
	return tmpl, ok && tmpl != ""
}
