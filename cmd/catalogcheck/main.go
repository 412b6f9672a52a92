// Command catalogcheck verifies translation catalogs against the message
// keys of the validator package and renders sample violations with them.
package main

import (
	"os"

	"github.com/dmitrymomot/validkit/pkg/config"
	"github.com/dmitrymomot/validkit/pkg/i18n"
	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

// appConfig is read from CATALOGCHECK_* environment variables. Flags win
// over the environment.
type appConfig struct {
	CatalogDir string           `env:"CATALOG_DIR"`
	Languages  []string         `env:"LANGUAGES" envSeparator:","`
	LogLevel   string           `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string           `env:"LOG_FORMAT" envDefault:"text"`
	Validator  validator.Config `envPrefix:"VALIDATOR_"`
}

// Exit codes
const (
	exitSuccess = 0
	exitFailure = 1
	exitConfig  = 2
)

func main() {
	var cfg appConfig
	if err := config.Load(&cfg, config.WithPrefix("CATALOGCHECK_")); err != nil {
		logger.New().Error("failed to load configuration", logger.Error(err))
		os.Exit(exitConfig)
	}

	log := logger.New(
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(logger.Component("catalogcheck")),
		logger.WithContextExtractors(i18n.LocaleExtractor()),
	)

	cmd := newRootCmd(cfg, log)
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}
