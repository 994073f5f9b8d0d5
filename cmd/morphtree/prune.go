package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/neurite/go-morphtree/morph"
)

func newPruneCmd(c *cli) *cobra.Command {
	var (
		tag    int32
		region string
	)

	cmd := &cobra.Command{
		Use:   "prune IN OUT",
		Short: "remove a tag region and renumber the survivors",
		Long: "Prune removes every segment carrying the selected tag and writes the " +
			"renumbered morphology to OUT. The region may be selected by raw tag " +
			"(--tag) or by name through the tag map (--region).",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("tag") == cmd.Flags().Changed("region") {
				return fmt.Errorf("exactly one of --tag and --region is required")
			}
			if region != "" {
				var err error
				if tag, err = c.tagMap.Tag(region); err != nil {
					return err
				}
			}

			tree, label, err := c.loadTree(args[0])
			if err != nil {
				return err
			}

			pruned, tagRoots, err := morph.PruneTag(tree, tag)
			if err != nil {
				return err
			}
			c.log.Info("pruned tag region",
				zap.Int32("tag", tag),
				zap.Uint32("before", uint32(tree.Size())),
				zap.Uint32("after", uint32(pruned.Size())),
				zap.Int("regionRoots", len(tagRoots)))

			return c.saveTree(args[1], pruned, label)
		},
	}

	cmd.Flags().Int32Var(&tag, "tag", 0, "tag of the region to remove")
	cmd.Flags().StringVar(&region, "region", "", "region name to remove, resolved through the tag map")
	return cmd
}
