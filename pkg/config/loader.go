package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration copies keyed by type and prefix.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = newConfigCache()

	defaultEnvLoaded sync.Once
)

func newConfigCache() *configCache {
	return &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
}

// WithPrefix parses variables named PREFIX + tag, e.g. "VALIDATOR_" turns
// `env:"MAX_DEPTH"` into VALIDATOR_MAX_DEPTH. Configurations loaded with
// different prefixes are cached separately.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFile loads the given .env files before parsing. Variables already
// present in the environment are not overridden.
func WithEnvFile(files ...string) Option {
	return func(o *options) { o.envFiles = append(o.envFiles, files...) }
}

// Load parses environment variables into v. Each type and prefix pair is
// parsed once; later calls receive the cached copy.
//
// The default .env file in the working directory is loaded once per process
// if it exists.
//
// Example:
//
//	type CheckConfig struct {
//		Dir       string `env:"CATALOG_DIR" envDefault:"locales"`
//		LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg CheckConfig
//	if err := config.Load(&cfg, config.WithPrefix("VALIDKIT_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	key := cacheKey[T](o.prefix)

	if loadCached(key, v) {
		return nil
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[key]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[key] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		if len(o.envFiles) > 0 {
			if loadErr := godotenv.Load(o.envFiles...); loadErr != nil {
				err = errors.Join(ErrLoadingEnvFile, loadErr)
				return
			}
		}
		if parseErr := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			return
		}

		globalCache.mu.Lock()
		globalCache.values[key] = *v
		globalCache.mu.Unlock()
	})

	if err != nil {
		// Allow a retry once the environment has been fixed.
		globalCache.mu.Lock()
		delete(globalCache.onces, key)
		globalCache.mu.Unlock()
		return err
	}

	if loadCached(key, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
//
// Example:
//
//	var cfg validator.Config
//	config.MustLoad(&cfg, config.WithPrefix("VALIDATOR_"))
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ResetCache forgets every loaded configuration so the next Load parses the
// environment again. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

func loadCached[T any](key string, v *T) bool {
	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()
	cached, ok := globalCache.values[key]
	if !ok {
		return false
	}
	*v = cached.(T)
	return true
}

// cacheKey identifies a configuration by its type name and env prefix.
func cacheKey[T any](prefix string) string {
	return fmt.Sprintf("%s|%s", reflect.TypeFor[T]().String(), prefix)
}
