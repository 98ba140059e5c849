package main

import (
	"github.com/eaugeas/bstree/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// treeBinder holds the values the demo inserts, queries
// and removes
type treeBinder struct {
	Values  []string
	Queries []string
	Removes []string
}

func (b *treeBinder) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().StringSlice("values", []string{"Telerik", "Google", "Microsoft"},
		"values inserted into the tree")
	cmd.PersistentFlags().StringSlice("query", []string{"Telerik", "IBM"},
		"values looked up after inserting")
	cmd.PersistentFlags().StringSlice("remove", []string{"Telerik"},
		"values removed after the lookups")
	return nil
}

func (b *treeBinder) Configure(v *viper.Viper) error {
	b.Values = v.GetStringSlice("values")
	b.Queries = v.GetStringSlice("query")
	b.Removes = v.GetStringSlice("remove")
	return nil
}

// logBinder holds the logging properties
type logBinder struct {
	Level  logrus.Level
	Format string
}

func (b *logBinder) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("log.level", "info", "minimum level of the log entries")
	cmd.PersistentFlags().String("log.format", "text", "format of the log entries, text or json")
	return nil
}

func (b *logBinder) Configure(v *viper.Viper) error {
	level, err := logrus.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return errors.Wrap(err, "invalid log.level")
	}

	b.Level = level
	b.Format = v.GetString("log.format")
	return nil
}

type demoConfig struct {
	tree *treeBinder
	log  *logBinder
}

func newDemoConfig() *demoConfig {
	return &demoConfig{tree: &treeBinder{}, log: &logBinder{}}
}

func (c *demoConfig) Use() string {
	return "bstdemo"
}

func (c *demoConfig) EnvPrefix() string {
	return "bstdemo"
}

func (c *demoConfig) Binders() []config.Binder {
	return []config.Binder{c.tree, c.log}
}
