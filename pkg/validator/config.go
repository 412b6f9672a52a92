package validator

// Config holds engine settings that deployments tune through the
// environment, e.g. with config.Load(&cfg, config.WithPrefix("VALIDATOR_")).
type Config struct {
	MaxDepth int `env:"MAX_DEPTH" envDefault:"32"`
}

// Options converts the configuration into engine options.
func (c Config) Options() []Option {
	return []Option{WithMaxDepth(c.MaxDepth)}
}
