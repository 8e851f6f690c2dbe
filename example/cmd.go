package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/next-trace/scg-ioerror/ioerror"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "ioerr-example",
		Short:         "Inspect files and report categorized I/O errors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(textCmd(), magicCmd())
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	return rootCmd
}

func textCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text <file>",
		Short: "Print a file that must contain valid UTF-8",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			log.Debug().Str("path", path).Msg("Reading text file")

			f, err := os.Open(path)
			if err != nil {
				return ioerror.Contextf(err, "opening %s", path)
			}
			defer f.Close()

			s, err := readToString(f)
			if err != nil {
				return ioerror.WithContext("reading " + path)(err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), s)

			return err
		},
	}
}

func magicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "magic <file>",
		Short: "Check that a file starts with the 0xDEAD magic number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			log.Debug().Str("path", path).Msg("Checking magic number")

			f, err := os.Open(path)
			if err != nil {
				return ioerror.Contextf(err, "opening %s", path)
			}
			defer f.Close()

			if err := checkMagicNumber(f); err != nil {
				return ioerror.WithContext("checking " + path)(err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "ok")

			return err
		},
	}
}
