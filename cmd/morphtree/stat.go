package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/neurite/go-morphtree/morph"
)

func newStatCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stat FILE",
		Short: "summarize a morphology's structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, label, err := c.loadTree(args[0])
			if err != nil {
				return err
			}

			var roots, forks, terminals int
			tags := map[int32]int{}
			for i := morph.Index(0); i < tree.Size(); i++ {
				if isRoot, _ := tree.IsRoot(i); isRoot {
					roots++
				}
				if isFork, _ := tree.IsFork(i); isFork {
					forks++
				}
				if isTerminal, _ := tree.IsTerminal(i); isTerminal {
					terminals++
				}
				tags[tree.Segments()[i].Tag]++
			}

			out := cmd.OutOrStdout()
			if label != "" {
				fmt.Fprintf(out, "label:     %s\n", label)
			}
			fmt.Fprintf(out, "segments:  %d\n", tree.Size())
			fmt.Fprintf(out, "roots:     %d\n", roots)
			fmt.Fprintf(out, "forks:     %d\n", forks)
			fmt.Fprintf(out, "terminals: %d\n", terminals)

			sortedTags := make([]int32, 0, len(tags))
			for tag := range tags {
				sortedTags = append(sortedTags, tag)
			}
			slices.Sort(sortedTags)
			for _, tag := range sortedTags {
				fmt.Fprintf(out, "tag %-5d  %d segments, %d region roots\n",
					tag, tags[tag], len(morph.TagRoots(tree, tag)))
			}
			return nil
		},
	}
}
