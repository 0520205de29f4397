package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder registers the flags of part of a configuration and
// reads them back once they are parsed
type Binder interface {
	// Bind registers flags in cmd and any defaults in v
	Bind(v *viper.Viper, cmd *cobra.Command) error

	// Configure reads the values from v
	Configure(v *viper.Viper) error
}

// ConfigFile is a Binder for the optional configuration file. Values
// in the file act as defaults for flags that are not set
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
