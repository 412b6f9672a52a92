package i18n

import "errors"

// Context cancellation errors are separate so callers can tell timeouts
// apart from broken catalogs.
var (
	// Parsing
	ErrParsingCancelled  = errors.New("translation parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidStructure  = errors.New("invalid translation structure")
	ErrUnsupportedFormat = errors.New("unsupported translation file format")

	// Loading
	ErrLoadingCancelled        = errors.New("loading translations cancelled")
	ErrFailedToReadFile        = errors.New("failed to read translation file")
	ErrFailedToParseFile       = errors.New("failed to parse translation file")
	ErrFailedToAccessDirectory = errors.New("failed to access directory")
	ErrFailedToReadDirectory   = errors.New("failed to read directory")
	ErrNoTranslations          = errors.New("no translations found")

	// Translator
	ErrNilAdapter          = errors.New("translation adapter is nil")
	ErrInvalidTranslations = errors.New("invalid translations")
)
