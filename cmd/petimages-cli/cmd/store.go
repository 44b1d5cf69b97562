package cmd

import (
	"fmt"

	"github.com/nfrund/petimages/internal/images"
	"github.com/spf13/cobra"
)

var storeCmd = &cobra.Command{
	Use:   "store <file>",
	Short: "Store a local file and print its generated name",
	Long: `Copies <file> into the storage directory under a generated name that keeps
the original extension. An empty file is not stored and prints nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		upload, err := images.NewFileUpload(fs, args[0])
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", args[0], err)
		}

		name, err := svc.Store(cmd.Context(), upload)
		if err != nil {
			return err
		}
		if name == "" {
			cmd.PrintErrf("%s is empty, nothing stored\n", args[0])
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(storeCmd)
}
