package cmd

import (
	"context"
	"os"

	"github.com/nfrund/petimages/internal/config"
	"github.com/nfrund/petimages/internal/images"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	storageLocation string
	// fs is swapped for an in-memory filesystem in tests.
	fs afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "petimages-cli",
	Short: "Manage stored pet images",
	Long: `petimages-cli operates directly on the image storage directory used by
the petimages server.

Available commands:
  store      Store a local file under a generated name
  delete     Delete a stored image
  resolve    Print the path a stored image name resolves to

Use "petimages-cli [command] --help" for more information about a command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaultLocation := os.Getenv("FILE_STORAGE_LOCATION")
	if defaultLocation == "" {
		defaultLocation = config.DefaultStorageLocation
	}
	rootCmd.PersistentFlags().StringVar(&storageLocation, "storage", defaultLocation, "image storage directory")
}

func newService() (*images.Service, error) {
	return images.NewService(fs, storageLocation)
}
