package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

func newCheckCmd(cfg *appConfig, log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report validator message keys missing from each language",
		Example: `  # Check the built-in catalogs
  catalogcheck check

  # Check Spanish and German in a project directory
  catalogcheck check --dir ./locales --lang es --lang de`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			translator, err := loadTranslator(cmd.Context(), cfg.CatalogDir, log)
			if err != nil {
				return err
			}

			langs := cfg.Languages
			if len(langs) == 0 {
				langs = translator.SupportedLanguages()
			}

			keys := validator.TemplateKeys()
			out := cmd.OutOrStdout()
			failed := 0
			for _, lang := range langs {
				missing := translator.Missing(lang, keys)
				if len(missing) == 0 {
					fmt.Fprintf(out, "%s: ok (%d keys)\n", lang, len(keys))
					continue
				}

				failed++
				log.Warn("catalog incomplete",
					logger.Language(lang),
					logger.Count(len(missing)),
				)
				fmt.Fprintf(out, "%s: missing %d of %d keys\n", lang, len(missing), len(keys))
				for _, key := range missing {
					fmt.Fprintf(out, "  - %s\n", key)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d languages incomplete", errMissingKeys, failed, len(langs))
			}
			return nil
		},
	}
}
