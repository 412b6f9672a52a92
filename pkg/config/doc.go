// Package config provides a type-safe, generic and cached way to load
// configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is loaded once, if present.
//   - Additional files can be requested per call with WithEnvFile.
//   - Variables are parsed into any struct using `env` field tags, optionally
//     under a name prefix set with WithPrefix.
//   - Each successfully loaded type and prefix pair is cached, so it is parsed
//     once for the lifetime of the process.
//
// # Usage
//
//	var cfg validator.Config
//	if err := config.Load(&cfg, config.WithPrefix("VALIDATOR_")); err != nil {
//	    log.Fatal(err)
//	}
//	engine := validator.New(registry, cfg.Options()...)
//
// MustLoad panics instead of returning an error, for start-up code where a
// broken configuration is fatal. ResetCache clears the cache between tests.
//
// # Error Handling
//
// Errors wrap ErrParsingConfig or ErrLoadingEnvFile together with the
// underlying library error and can be checked with errors.Is. A nil target
// returns ErrNilPointer.
//
// # Concurrency
//
// Load is safe for concurrent use. Concurrent first calls for the same type
// and prefix parse the environment once.
package config
