package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder declares a group of flags and reads their values
// back once they are parsed
type Binder interface {
	// Bind registers the flags of the binder in cmd and any
	// defaults in v
	Bind(v *viper.Viper, cmd *cobra.Command) error

	// Configure reads the values the binder is interested in
	// after the flags have been parsed
	Configure(v *viper.Viper) error
}

// ConfigFile is the binder for the optional configuration file
// passed with --config
type ConfigFile struct {
	Path string
}

// Bind implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("config", "", "path to a configuration file")
	return nil
}

// Configure implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString("config")
	if len(f.Path) == 0 {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", f.Path)
	}

	return nil
}
