package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/validkit/pkg/logger"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// Translator serves translations loaded through an adapter. Requested
// languages are negotiated against the loaded ones, so "es-MX" resolves to
// "es" and unknown languages resolve to the default language.
type Translator struct {
	translations   map[string]map[string]any
	languages      []string
	matcher        language.Matcher
	matchable      []string
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator creates a Translator and loads translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
		adapter:       adapter,
	}
	for _, option := range options {
		if option != nil {
			option(t)
		}
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload loads the translations again from the adapter. On error the
// previous translations stay in place.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := validateTranslations(translations); err != nil {
		return err
	}
	if len(translations) == 0 {
		t.logger.WarnContext(ctx, "no translations provided", logger.Component("i18n"))
	}

	languages := sortedLanguages(translations)
	matcher, matchable := newMatcher(t.defaultLang, languages)

	t.mu.Lock()
	t.translations = translations
	t.languages = languages
	t.matcher = matcher
	t.matchable = matchable
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "translations loaded",
		logger.Component("i18n"),
		slog.Any("languages", languages),
	)
	return nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if translations == nil {
			return fmt.Errorf("%w: nil translations map for language %q", ErrInvalidTranslations, lang)
		}
	}
	return nil
}

func sortedLanguages(trans map[string]map[string]any) []string {
	langs := make([]string, 0, len(trans))
	for lang := range trans {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// newMatcher builds a matcher over the loaded languages that parse as BCP 47
// tags. The default language goes first so it wins ties.
func newMatcher(defaultLang string, languages []string) (language.Matcher, []string) {
	ordered := make([]string, 0, len(languages))
	if slices.Contains(languages, defaultLang) {
		ordered = append(ordered, defaultLang)
	}
	for _, lang := range languages {
		if lang != defaultLang {
			ordered = append(ordered, lang)
		}
	}

	tags := make([]language.Tag, 0, len(ordered))
	matchable := make([]string, 0, len(ordered))
	for _, lang := range ordered {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		matchable = append(matchable, lang)
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return language.NewMatcher(tags), matchable
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.languages)
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match negotiates lang against the loaded languages. It returns the
// default language when nothing matches.
func (t *Translator) Match(lang string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.match(lang)
}

func (t *Translator) match(lang string) string {
	if _, ok := t.translations[lang]; ok {
		return lang
	}
	if t.matcher == nil || lang == "" {
		return t.defaultLang
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		return t.defaultLang
	}
	return t.matchable[idx]
}

// HasTranslation reports whether lang, taken literally, has a string
// translation for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.lookup(lang, key)
	return ok
}

// Lookup returns the raw template for key in the negotiated language,
// without placeholder substitution.
func (t *Translator) Lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lookup(t.match(lang), key)
}

// Missing returns the keys that lang, taken literally, does not translate.
// Every key is missing for a language that is not loaded.
func (t *Translator) Missing(lang string, keys []string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var missing []string
	for _, key := range keys {
		if _, ok := t.lookup(lang, key); !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// T translates key, substituting %{name} placeholders from args given as
// name, value pairs.
//
// Example:
//
//	// With translation "welcome": "Hello, %{name}!"
//	msg := translator.T("en", "welcome", "name", "John")
//	// Returns: "Hello, John!"
//
// If the translation is not found the key itself is formatted and returned,
// unless WithFallbackToKey(false) was set, in which case T returns "".
func (t *Translator) T(lang, key string, args ...string) string {
	if tmpl, ok := t.resolve(lang, key); ok {
		return sprintf(tmpl, args)
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td translates key like T but falls back to defaultValue.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if tmpl, ok := t.resolve(lang, key); ok {
		return sprintf(tmpl, args)
	}
	return sprintf(defaultValue, args)
}

// Tc translates key using the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func (t *Translator) resolve(lang, key string) (string, bool) {
	t.mu.RLock()
	matched := t.match(lang)
	tmpl, ok := t.lookup(matched, key)
	t.mu.RUnlock()

	if !ok && t.missingLogMode {
		t.logger.Warn("translation not found",
			logger.Component("i18n"),
			logger.Language(matched),
			logger.Key(key),
		)
	}
	return tmpl, ok
}

// lookup finds key in lang. A flat dotted key wins over nested maps, so
// {"validation.required": ...} and {"validation": {"required": ...}} both work.
// Only string values count as translations.
func (t *Translator) lookup(lang, key string) (string, bool) {
	m, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	if v, ok := m[key]; ok {
		return asTemplate(v)
	}

	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			return asTemplate(next)
		}
		if current, ok = toStringMap(next); !ok {
			return "", false
		}
	}
	return "", false
}

func asTemplate(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case fmt.Stringer:
		return val.String(), true
	default:
		return "", false
	}
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes %{name} placeholders from name, value pairs. An odd
// trailing argument is ignored; unknown placeholders are kept.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
