package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/i18n"
)

var localeCmd = &cobra.Command{
	Use:   "locale [LOCALE]",
	Short: "Show or persist the interface language",
	Long: `Show the available interface languages, or save one to the config file.

Comments and other settings in the config file are preserved.

Examples:
  # List languages, marking the active one
  signup locale

  # Switch to Brazilian Portuguese
  signup locale pt-BR`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if loadErr != nil {
			return loadErr
		}
		if len(args) == 0 {
			printLocales(cmd.OutOrStdout(), cfg.Locale)
			return nil
		}
		return setLocale(cmd.OutOrStdout(), configPath, args[0])
	},
}

func init() {
	rootCmd.AddCommand(localeCmd)
}

// printLocales lists every supported locale, marking current with "*".
func printLocales(w io.Writer, current string) {
	if current == "" {
		current = i18n.DefaultLocale
	}
	for _, l := range i18n.Locales() {
		marker := " "
		if l == current {
			marker = "*"
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", marker, l)
	}
}

func setLocale(w io.Writer, path, locale string) error {
	if err := config.SaveLocale(path, locale); err != nil {
		return fmt.Errorf("saving locale: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Locale set to %s in %s\n", locale, path)
	return nil
}
