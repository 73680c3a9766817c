// file: cmd/main.go

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ha1tch/dos33/cmd/catalog"
	"github.com/ha1tch/dos33/cmd/create"
	"github.com/ha1tch/dos33/cmd/delete"
	"github.com/ha1tch/dos33/cmd/extract"
	"github.com/ha1tch/dos33/cmd/info"
	"github.com/ha1tch/dos33/cmd/save"
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dos33",
	Short: "Create and manipulate Apple II DOS 3.3 disk images",
	Long: `dos33 - native Apple II DOS 3.3 disk image tools.

Creates .dsk images, maintains the VTOC and catalog, and tokenizes
Applesoft BASIC source into the on-disk program representation.

Examples:
  dos33 create games.dsk
  dos33 save games.dsk lemonade.bas
  dos33 catalog games.dsk
  dos33 extract -d games.dsk LEMONADE listing.bas
  dos33 delete games.dsk LEMONADE
  dos33 info games.dsk

Use 'dos33 [command] --help' for more information about a command.`,
	SilenceUsage: true,
}

func newCreateCmd() *cobra.Command {
	opts := create.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "create <image.dsk>",
		Short: "Create a blank formatted DOS 3.3 disk image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return create.Create(args[0], opts)
		},
	}
	cmd.Flags().IntVarP(&opts.VolumeNumber, "volume", "v", opts.VolumeNumber, "volume number (1-254)")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "overwrite an existing image")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress non-error output")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	opts := catalog.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "catalog <image.dsk>",
		Short: "List the files on a disk image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return catalog.List(args[0], opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.JSON, "json", "j", false, "output in JSON format")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress the free-sector summary")
	return cmd
}

func newSaveCmd() *cobra.Command {
	opts := save.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "save <image.dsk> <source.bas>",
		Short: "Tokenize a BASIC program and save it to a disk image",
		Long: `Tokenize an Applesoft BASIC source file and save it to a disk image.
A missing image is created and formatted first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return save.Save(args[0], args[1], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "catalog name (default: source file base name)")
	cmd.Flags().IntVarP(&opts.VolumeNumber, "volume", "v", opts.VolumeNumber, "volume number when formatting a fresh image")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress non-error output")
	return cmd
}

func newExtractCmd() *cobra.Command {
	opts := extract.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "extract <image.dsk> <name> <output>",
		Short: "Extract a file from a disk image",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return extract.Extract(args[0], args[1], args[2], opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.Detokenize, "detokenize", "d", false, "expand an Applesoft file into listing text")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress non-error output")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	opts := delete.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "delete <image.dsk> <name>",
		Short: "Delete a file from a disk image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return delete.Delete(args[0], args[1], opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress non-error output")
	return cmd
}

func newInfoCmd() *cobra.Command {
	opts := info.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "info <image.dsk>",
		Short: "Show volume information for a disk image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return info.Info(args[0], opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.JSON, "json", "j", false, "output in JSON format")
	return cmd
}

func init() {
	rootCmd.AddCommand(
		newCreateCmd(),
		newCatalogCmd(),
		newSaveCmd(),
		newExtractCmd(),
		newDeleteCmd(),
		newInfoCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
