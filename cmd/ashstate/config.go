package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagToViperKey maps CLI flag names to viper configuration keys.
var flagToViperKey = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
}

func init() {
	setDefaults()
}

func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("cache.name", "")
}

func readConfig(cmd *cobra.Command) {
	bindFlags(viper.GetViper(), cmd.Flags())

	viper.SetEnvPrefix("ASHSTATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// bindFlags binds explicitly set flags, so env values are not shadowed by flag defaults.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		key := f.Name
		if mapped, ok := flagToViperKey[key]; ok {
			key = mapped
		}
		if f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				slog.Warn("failed to bind flag", "flag", f.Name, "err", err)
			}
		}
	})
}
