package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkExists bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "Print the path a stored image name resolves to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		path := svc.ResolvePath(args[0])
		if !checkExists {
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		}

		exists, err := svc.Exists(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\texists=%t\n", path, exists)
		return nil
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&checkExists, "exists", false, "also report whether the image is stored")
	rootCmd.AddCommand(resolveCmd)
}
