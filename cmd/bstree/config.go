package main

import (
	"strconv"
	"strings"

	"github.com/eaugeas/bstree/config"
	errs "github.com/eaugeas/bstree/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	modeIterative = "iterative"
	modeRecursive = "recursive"
)

// Config is the configuration of bstree
type Config struct {
	tree treeBinder
	log  logBinder
}

// Use implementation of config.Config
func (c *Config) Use() string {
	return "bstree"
}

// EnvPrefix implementation of config.Config
func (c *Config) EnvPrefix() string {
	return "bstree"
}

// Binders implementation of config.Config
func (c *Config) Binders() []config.Binder {
	return []config.Binder{&c.tree, &c.log}
}

// treeBinder holds the values to insert and the operations
// to run on the tree
type treeBinder struct {
	Values []int
	Find   []int
	Remove []int
	Mode   string
}

func (b *treeBinder) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("values", "", "comma separated integers inserted in order")
	cmd.PersistentFlags().String("find", "", "comma separated integers to look up after inserting")
	cmd.PersistentFlags().String("remove", "", "comma separated integers to remove after the lookups")
	cmd.PersistentFlags().String("mode", modeIterative, "descent used by insert and find, iterative or recursive")
	return nil
}

func (b *treeBinder) Configure(v *viper.Viper) error {
	var err error

	if b.Values, err = parseValues(v.GetString("values")); err != nil {
		return err
	}
	if b.Find, err = parseValues(v.GetString("find")); err != nil {
		return err
	}
	if b.Remove, err = parseValues(v.GetString("remove")); err != nil {
		return err
	}

	b.Mode = v.GetString("mode")
	switch b.Mode {
	case modeIterative, modeRecursive:
		return nil
	default:
		return errs.New(errs.ErrCodeInvalidMode, "unknown mode %q", b.Mode)
	}
}

type logBinder struct {
	Level logrus.Level
}

func (b *logBinder) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("log-level", logrus.InfoLevel.String(), "minimum level of the log entries written")
	return nil
}

func (b *logBinder) Configure(v *viper.Viper) error {
	level, err := logrus.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return errs.New(errs.ErrCodeInvalidConfig, "%s", err.Error())
	}

	b.Level = level
	return nil
}

// parseValues parses a comma separated list of integers. Blank
// entries are ignored
func parseValues(s string) ([]int, error) {
	var values []int

	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if len(field) == 0 {
			continue
		}

		value, err := strconv.Atoi(field)
		if err != nil {
			return nil, errs.New(errs.ErrCodeInvalidValue, "value %q is not an integer", field)
		}

		values = append(values, value)
	}

	return values, nil
}
