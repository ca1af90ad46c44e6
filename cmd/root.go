package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/signup/internal/app"
	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/i18n"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/tracing"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const (
	debugLogFile         = "debug.log"
	tracingShutdownLimit = 5 * time.Second
)

var (
	version    = "dev"
	cfgFile    string
	cfg        config.Config
	configPath string
	loadErr    error
)

var rootCmd = &cobra.Command{
	Use:     "signup",
	Short:   "A terminal user registration form",
	Long:    `A terminal form for registering users: name, email, phone and password with inline validation.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .signup/config.yaml, then ~/.config/signup/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write debug.log and enable the log overlay (ctrl+x)")
	rootCmd.Flags().String("locale", "",
		"interface language (en, pt-BR)")
	rootCmd.Flags().Bool("fail", false,
		"make the simulated registration fail")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("locale", rootCmd.Flags().Lookup("locale"))
	_ = viper.BindPFlag("form.simulate_failure", rootCmd.Flags().Lookup("fail"))
}

func initConfig() {
	cfg, configPath, loadErr = loadConfig(viper.GetViper(), cfgFile)
}

// loadConfig reads configuration into a Config and returns the path of the
// file it came from. When no file exists a commented default is written to
// config.DefaultPath.
func loadConfig(v *viper.Viper, explicit string) (config.Config, string, error) {
	defaults := config.Defaults()
	v.SetDefault("locale", defaults.Locale)
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("form.submit_delay", defaults.Form.SubmitDelay)
	v.SetDefault("form.banner_duration", defaults.Form.BannerDuration)
	v.SetDefault("form.simulate_failure", defaults.Form.SimulateFailure)
	v.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	v.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	v.SetDefault("tracing.file_path", defaults.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	// SIGNUP_DEBUG=1 behaves like --debug
	v.SetEnvPrefix("SIGNUP")
	_ = v.BindEnv("debug")

	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		// Config lookup order:
		// 1. .signup/config.yaml (current directory)
		// 2. ~/.config/signup/config.yaml (user config)
		if _, err := os.Stat(config.DefaultPath); err == nil {
			v.SetConfigFile(config.DefaultPath)
		} else {
			home, _ := os.UserHomeDir()
			v.AddConfigPath(filepath.Join(home, ".config", "signup"))
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return defaults, explicit, fmt.Errorf("reading config: %w", err)
		}
		// No config file found anywhere - create default at .signup/config.yaml
		if writeErr := config.WriteDefaultConfig(config.DefaultPath); writeErr == nil {
			v.SetConfigFile(config.DefaultPath)
			_ = v.ReadInConfig()
		}
		// If write fails, just continue with defaults (no config file)
	}

	var loaded config.Config
	if err := v.Unmarshal(&loaded); err != nil {
		return defaults, v.ConfigFileUsed(), fmt.Errorf("decoding config: %w", err)
	}

	used := v.ConfigFileUsed()
	if used == "" {
		used = config.DefaultPath
	}
	return loaded, used, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	if loadErr != nil {
		return loadErr
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug {
		cleanup, err := log.Init(debugLogFile, log.DefaultBufferSize)
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
	}
	log.Info(log.CatConfig, "Configuration loaded",
		"path", configPath,
		"locale", cfg.Locale,
		"submit_delay", cfg.Form.SubmitDelay,
		"simulate_failure", cfg.Form.SimulateFailure,
		"tracing", cfg.Tracing.Enabled)

	catalog, err := i18n.Lookup(cfg.Locale)
	if err != nil {
		return err
	}

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), tracingShutdownLimit)
		defer cancel()
		if shutdownErr := provider.Shutdown(ctx); shutdownErr != nil {
			log.ErrorErr(log.CatTrace, "Tracing shutdown failed", shutdownErr)
		}
	}()

	registrar := registration.WithTracing(
		registration.NewSimulatedRegistrar(cfg.Form.SubmitDelay, cfg.Form.SimulateFailure),
		provider.Tracer(),
	)

	zone.NewGlobal()
	model := app.New(app.Config{
		Catalog:        catalog,
		Registrar:      registrar,
		BannerDuration: cfg.Form.BannerDuration,
		Debug:          cfg.Debug,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	// Cancel any registration still in flight
	model.Close()

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
