// Package cli provides the command-line interface for the chart service.
package cli

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"soultether/internal/config"
	"soultether/internal/ephemeris"
	"soultether/internal/geocode"
	"soultether/internal/logging"
	"soultether/internal/reading"
	"soultether/internal/store"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2026-08-31"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Source    ephemeris.Source
	Geocoder  *geocode.Chain
	Renderer  *reading.Renderer
	Narrative *reading.NarrativeClient
	Store     store.ReadingLog
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	app.Source = ephemeris.Select(cfg.Ephemeris.DataPath)
	logger.Debug().Str("fidelity", string(app.Source.Fidelity())).Msg("ephemeris source selected")

	var providers []geocode.Geocoder
	if cfg.Geocode.GeoapifyKey != "" {
		providers = append(providers, geocode.NewGeoapify(cfg.Geocode.GeoapifyKey, cfg.Geocode.GeoapifyURL, cfg.Geocode.Timeout))
	}
	providers = append(providers, geocode.NewNominatim(cfg.Geocode.NominatimURL, cfg.Geocode.Timeout))
	app.Geocoder = geocode.NewChain(logger, providers...)

	dataset := reading.EmptyDataset()
	if cfg.Reading.DatasetPath != "" {
		loaded, err := reading.LoadDataset(cfg.Reading.DatasetPath)
		if err != nil {
			logger.Warn().Err(err).Msg("interpretation dataset unavailable, using built-in tables")
		} else {
			dataset = loaded
		}
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	app.Renderer = reading.NewRenderer(reading.NewInterpreter(dataset), rng, cfg.Chart.AlignmentOrb)

	if cfg.HasLLM() {
		app.Narrative = reading.NewNarrativeClient(cfg.LLM.APIKey, cfg.LLM.Model)
		logger.Debug().Str("model", cfg.LLM.Model).Msg("narrative client initialized")
	}

	if cfg.Reading.LogPath != "" {
		readingLog, err := store.NewSQLiteLog(cfg.Reading.LogPath)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to open reading log, readings will not be persisted")
		} else {
			app.Store = readingLog
			logger.Debug().Msg("reading log initialized")
		}
	}

	rootCmd := &cobra.Command{
		Use:   "soultether",
		Short: "SoulTether - natal chart and Flower of Life alignment service",
		Long: `SoulTether computes natal charts and detects planetary alignments with
Flower of Life reference nodes.

It serves readings over HTTP and from the command line, resolving birth
locations through geocoding providers and computing positions from VSOP87
ephemeris data when available.

Use 'soultether help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/soultether)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newServeCmd(app))
	rootCmd.AddCommand(newReadingCmd(app))
	rootCmd.AddCommand(newNodesCmd(app))
	rootCmd.AddCommand(newConfigCmd(app))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("SoulTether v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			output.Bold("Server")
			output.Printf("  host: %s\n  port: %d\n", app.Config.Server.Host, app.Config.Server.Port)
			output.Bold("Geocode")
			output.Printf("  geoapify key set: %v\n  timeout: %s\n", app.Config.Geocode.GeoapifyKey != "", app.Config.Geocode.Timeout)
			output.Bold("Ephemeris")
			output.Printf("  data path: %s\n  fidelity: %s\n", app.Config.Ephemeris.DataPath, app.Source.Fidelity())
			output.Bold("Chart")
			output.Printf("  alignment orb: %.1f°\n", app.Config.Chart.AlignmentOrb)
			output.Bold("LLM")
			output.Printf("  configured: %v\n  model: %s\n", app.Config.HasLLM(), app.Config.LLM.Model)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}
