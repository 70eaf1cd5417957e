package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resolveBool and resolveStrings let a flag fall back to its bound viper
// key (config file or environment variable) when the caller did not pass
// it explicitly, matching the "flag overrides config overrides default"
// precedence cobra/viper are normally wired for.
func resolveBool(cmd *cobra.Command, value bool, key, flagName string) bool {
	if flagChanged(cmd, flagName) {
		return value
	}
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return value
}

func resolveStrings(cmd *cobra.Command, values []string, key, flagName string) []string {
	if flagChanged(cmd, flagName) {
		return values
	}
	if v := viper.GetStringSlice(key); len(v) > 0 {
		return v
	}
	return values
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
