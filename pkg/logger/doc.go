// Package logger provides a small factory around Go's slog package with
// functional options and helper attribute constructors, so every package in
// the module logs with the same keys.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("catalogcheck"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Warn("translation missing",
//	    logger.Language("es"),
//	    logger.Key("validation.required"),
//	)
//
// # Configuration
//
//   - WithDevelopment / WithProduction – sensible defaults per environment.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel / WithLevelName – minimum level.
//   - WithAttr – static attributes.
//   - WithContextExtractors – attributes read from the context of each record,
//     such as i18n.LocaleExtractor.
//
// Libraries in this module default to Discard and accept a *slog.Logger
// through their own options.
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, allowing
//
//	log.Info("catalog loaded", logger.Error(err))
//
// without an additional nil check.
package logger
