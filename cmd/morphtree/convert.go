package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newConvertCmd(c *cli) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "convert between SWC and CBOR morphology documents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, fileLabel, err := c.loadTree(args[0])
			if err != nil {
				return err
			}
			if label == "" {
				label = fileLabel
			}

			c.log.Info("converting morphology",
				zap.String("in", args[0]), zap.String("out", args[1]),
				zap.Uint32("segments", uint32(tree.Size())))
			return c.saveTree(args[1], tree, label)
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "label stored in the output document (default: derived from the input)")
	return cmd
}
