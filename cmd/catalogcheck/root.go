package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validkit/pkg/i18n"
)

var errMissingKeys = errors.New("catalog is missing validator keys")

func newRootCmd(cfg appConfig, log *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "catalogcheck",
		Short: "Check translation catalogs used for validation messages",
		Long: `Check translation catalogs used for validation messages.

Catalogs are YAML or JSON files keyed by language. Without --dir the
catalogs compiled into the module are used.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfg.CatalogDir, "dir", cfg.CatalogDir, "Directory with catalog files (default: built-in catalogs)")
	root.PersistentFlags().StringSliceVar(&cfg.Languages, "lang", cfg.Languages, "Languages to use (repeatable)")

	root.AddCommand(newCheckCmd(&cfg, log), newRenderCmd(&cfg, log))
	return root
}

// loadTranslator opens the catalogs from dir, or the built-in ones when dir
// is empty. Directories may hold YAML or JSON files.
func loadTranslator(ctx context.Context, dir string, log *slog.Logger) (*i18n.Translator, error) {
	opts := []i18n.Option{i18n.WithLogger(log)}
	if dir == "" {
		return i18n.NewTranslator(ctx, i18n.Builtin(i18n.WithAdapterLogger(log)), opts...)
	}

	var errs []error
	for _, parser := range []i18n.Parser{i18n.NewYAMLParser(), i18n.NewJSONParser()} {
		adapter := i18n.NewDirectoryAdapter(parser, dir, i18n.WithAdapterLogger(log))
		translator, err := i18n.NewTranslator(ctx, adapter, opts...)
		if err == nil {
			return translator, nil
		}
		errs = append(errs, err)
	}
	return nil, fmt.Errorf("load catalogs from %q: %w", dir, errors.Join(errs...))
}
