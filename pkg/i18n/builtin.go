package i18n

import "embed"

//go:embed locales/*.yaml
var builtinLocales embed.FS

// Builtin returns an adapter over the catalogs shipped with the module:
// English and Spanish templates for every validator message key.
func Builtin(opts ...AdapterOption) *EmbeddedFsAdapter {
	return NewEmbeddedFsAdapter(NewYAMLParser(), builtinLocales, "locales", opts...)
}
