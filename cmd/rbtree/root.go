package main

import (
	"io"

	"github.com/segmentio/rbtree/compare"
	"github.com/segmentio/rbtree/container/rbtree"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	config := DefaultConfig()

	root := &cobra.Command{
		Use:           "rbtree",
		Short:         "Build red-black trees from integers and print their structure.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if config.Verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return config.Validate()
		},
	}
	config.bindFlags(root.PersistentFlags())

	root.AddCommand(newBuildCommand(config))
	root.AddCommand(newEraseCommand(config))
	return root
}

func newBuildCommand(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "build [values...]",
		Short: "Insert values in an empty tree and print it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.WithField("command", "build")

			tree, err := buildTree(config, args, cmd.InOrStdin(), log)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), tree, config.Format)
		},
	}
}

func newEraseCommand(config *Config) *cobra.Command {
	var erase []int

	cmd := &cobra.Command{
		Use:   "erase --erase v1,v2 [values...]",
		Short: "Insert values in an empty tree, erase some of them, and print it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.WithField("command", "erase")

			tree, err := buildTree(config, args, cmd.InOrStdin(), log)
			if err != nil {
				return err
			}

			for _, v := range erase {
				n := tree.EraseValue(v)
				log.WithFields(logrus.Fields{"value": v, "erased": n}).Debug("erase")
				if config.Format == formatText {
					if err := writef(cmd.OutOrStdout(), "erase %d: %d\n", v, n); err != nil {
						return err
					}
				}
			}

			return render(cmd.OutOrStdout(), tree, config.Format)
		},
	}

	cmd.Flags().IntSliceVar(&erase, "erase", nil, "values to erase after building the tree")
	return cmd
}

func buildTree(config *Config, args []string, stdin io.Reader, log *logrus.Entry) (*rbtree.Tree[int], error) {
	values, err := readValues(config.File, args, stdin)
	if err != nil {
		return nil, err
	}

	tree := rbtree.New(compare.Function[int])
	for _, v := range values {
		if _, inserted := tree.Insert(v, config.Unique); !inserted {
			log.WithField("value", v).Debug("skipping duplicate value")
		}
	}

	log.WithField("size", tree.Len()).Debug("tree built")
	return tree, nil
}
