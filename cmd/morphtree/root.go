package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/neurite/go-morphtree/morphio"
)

type cli struct {
	log *zap.Logger

	verbose    bool
	tagMapPath string
	tagMap     morphio.TagMap
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "morphtree",
		Short:         "inspect and transform neuron morphologies",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if c.verbose {
				c.log, err = zap.NewDevelopment()
			} else {
				c.log, err = zap.NewProduction()
			}
			if err != nil {
				return err
			}

			c.tagMap = morphio.DefaultTagMap()
			if c.tagMapPath != "" {
				c.tagMap, err = morphio.LoadTagMap(c.tagMapPath)
				if err != nil {
					return err
				}
				c.log.Debug("loaded tag map", zap.String("path", c.tagMapPath), zap.Int("entries", len(c.tagMap)))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.tagMapPath, "tagmap", "", "yaml file mapping region names to tags (default: SWC convention)")

	root.AddCommand(newStatCmd(c))
	root.AddCommand(newPruneCmd(c))
	root.AddCommand(newConvertCmd(c))
	return root
}
