package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validkit/pkg/i18n"
	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

func newRenderCmd(cfg *appConfig, log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Validate a sample order item and print the localized violations",
		Example: `  # Spanish messages from the built-in catalogs
  catalogcheck render --lang es`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			translator, err := loadTranslator(cmd.Context(), cfg.CatalogDir, log)
			if err != nil {
				return err
			}

			langs := cfg.Languages
			if len(langs) == 0 {
				langs = []string{translator.DefaultLanguage()}
			}

			engine := validator.New(sampleRegistry(),
				append(cfg.Validator.Options(), validator.WithLogger(log))...,
			)
			item := sampleOrderItem()

			out := cmd.OutOrStdout()
			for i, lang := range langs {
				if i > 0 {
					fmt.Fprintln(out)
				}
				ctx := i18n.SetLocale(cmd.Context(), lang)
				catalog := translator.CatalogContext(ctx)
				fmt.Fprintf(out, "[%s]\n", catalog.Language())

				_, errs := engine.Localize(catalog).TryValidateRecursive(item)
				log.DebugContext(ctx, "sample rendered",
					logger.Count(len(errs)),
					slog.String("catalog", catalog.Language()),
				)
				for _, e := range errs {
					fmt.Fprintf(out, "%s: %s\n", e.Field, e.Message)
				}
			}
			return nil
		},
	}
}
