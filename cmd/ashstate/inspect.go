package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	ashstate "github.com/Borislavv/go-ash-state"
	"github.com/Borislavv/go-ash-state/config"
	"github.com/Borislavv/go-ash-state/naming"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <options-file>",
	Short: "Print the resolved cache state for an option file",
	Long: `Reads a .yaml, .toml or .json option file, resolves it and prints the result as YAML.
Exits non-zero when a hook fails validation.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("name", "", "cache name (default: random, env: ASHSTATE_CACHE_NAME)")
	inspectCmd.Flags().String("sep", "_", "separator between the cache name and collaborator suffixes")
	flagToViperKey["name"] = "cache.name"
	flagToViperKey["sep"] = "cache.separator"
	viper.SetDefault("cache.separator", "_")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	opts, err := config.LoadOptions(path)
	if err != nil {
		slog.Error("failed to load options", "file", path, "err", err)
		return err
	}

	name := viper.GetString("cache.name")
	if name == "" {
		name = "cache-" + uuid.NewString()
	}

	names := naming.SuffixDeriver{Sep: viper.GetString("cache.separator")}
	st, err := ashstate.New(slog.Default(), names).Parse(name, opts)
	if err != nil {
		slog.Error("invalid cache options", "file", path, "cache", name, "err", err)
		return fmt.Errorf("inspect %s: %w", path, err)
	}

	slog.Info("cache options resolved", "file", path, "cache", name, "options", len(opts))
	return writeReport(cmd.OutOrStdout(), newReport(st))
}
