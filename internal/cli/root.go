// Package cli provides the command-line interface for boundcache.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/emmaagwu/boundcache/internal/config"
	"github.com/emmaagwu/boundcache/internal/logging"
)

// app carries state shared by the subcommands.
type app struct {
	viper      *viper.Viper
	configFile string
	config     config.Config
}

// NewRootCmd creates the root command for boundcache.
func NewRootCmd(version string) *cobra.Command {
	a := &app{viper: config.NewViper()}

	rootCmd := &cobra.Command{
		Use:           "boundcache",
		Short:         "Exercise a bounded cache with pluggable eviction policies",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.viper, a.configFile)
			if err != nil {
				return err
			}
			a.config = cfg

			logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging())
			if err != nil {
				return err
			}
			cmd.SetContext(logging.WithContext(cmd.Context(), logger))

			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (yaml, toml or json)")
	flags.Int("capacity", config.Default().Cache.Capacity, "maximum number of cached items")
	flags.String("policy", config.Default().Cache.Policy, "eviction policy: fifo, lifo, lru, mru or lfu")
	flags.String("log-level", config.Default().Log.Level, "log level: trace, debug, info, warn or error")
	flags.String("log-format", config.Default().Log.Format, "log format: console or json")

	for key, flag := range map[string]string{
		"cache.capacity": "capacity",
		"cache.policy":   "policy",
		"log.level":      "log-level",
		"log.format":     "log-format",
	} {
		if err := a.viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("cli: failed to bind flag %s: %v", flag, err))
		}
	}

	rootCmd.AddCommand(
		newReplayCmd(a),
		newPageCmd(),
	)

	return rootCmd
}
