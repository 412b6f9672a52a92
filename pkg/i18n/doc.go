// Package i18n loads translation catalogs and serves them per language,
// mainly as message template providers for the validator package.
//
// The package allows you to:
//
//   - Load translations from a file, a directory, an fs.FS (such as an
//     embed.FS) or any custom source implementing TranslationAdapter.
//   - Parse YAML and JSON catalogs whose keys nest or use dotted names.
//   - Negotiate the requested language against the loaded ones with
//     golang.org/x/text/language, so "es-MX" is served from "es".
//   - Translate strings with named placeholders (`%{name}`), or hand raw
//     templates to another formatter through a Catalog.
//   - Find the keys a language is missing, for catalog checks in CI.
//
// # Architecture
//
// Translator owns the loaded translations and delegates storage to a
// TranslationAdapter. Catalog is a view of one negotiated language that
// implements the validator TemplateProvider contract (Template(key)), so
// validation messages can be localized without the validator depending on
// this package. Builtin ships English and Spanish templates for every
// validator message key.
//
// # Usage
//
//	translator, err := i18n.NewTranslator(ctx, i18n.Builtin(),
//		i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		log.Fatalf("failed to init translator: %v", err)
//	}
//
//	engine := validator.New(registry).Localize(translator.Catalog("es-MX"))
//
// Per request, store the locale with SetLocale and pick the catalog with
// CatalogContext(ctx).
//
// # Error Handling
//
// Errors wrap package sentinels such as ErrFailedToParseFile or
// ErrNoTranslations and can be checked with errors.Is. Context cancellation
// while loading is reported as ErrLoadingCancelled joined with ctx.Err().
//
// # Concurrency
//
// Translator and Catalog are safe for concurrent use. Reload swaps the
// translations atomically.
package i18n
