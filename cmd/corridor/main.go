// Package main is the entry point for the corridor shooter
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/corridor/audio"
	"github.com/lixenwraith/corridor/config"
	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/logging"
	"github.com/lixenwraith/corridor/system"
)

var (
	configPath string
	seedFlag   uint64
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:          "corridor",
	Short:        "First-person corridor shooter",
	Long:         `Corridor runs a fixed-step corridor shooter simulation, interactively in the terminal or headless.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (json, toml or yaml)")
	rootCmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "random seed, 0 uses config or clock")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadConfig reads the config and applies command-line overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seedFlag
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

// newWorld builds a world with every system registered, not yet populated
func newWorld(cfg *config.Config, logger zerolog.Logger) (*engine.World, *system.Systems) {
	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithSessionConfig(engine.SessionConfig{
			MaxHealth:    cfg.Session.MaxHealth,
			StartingAmmo: cfg.Session.StartingAmmo,
			NoClip:       cfg.Session.NoClip,
		}),
	}
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithSeed(cfg.Seed))
	}

	world := engine.NewWorld(opts...)
	systems := system.Register(world)
	return world, systems
}

func audioConfig(cfg *config.Config) audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = cfg.Audio.Enabled
	ac.Volume = cfg.Audio.Volume
	return ac
}

// newLogger opens the configured log file, an empty path discards output
func newLogger(cfg *config.Config) (zerolog.Logger, io.Closer, error) {
	out, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	logger, err := logging.New(cfg.LogLevel, out)
	if err != nil {
		out.Close()
		return zerolog.Nop(), nil, err
	}
	return logger, out, nil
}
