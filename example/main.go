// Package main demonstrates usage of the scg-ioerror package.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/next-trace/scg-ioerror/ioerror"
)

// main sets up logging based on the IOERR_DEBUG environment variable and runs the root command.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if os.Getenv("IOERR_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Stringer("kind", ioerror.KindOf(err)).Msg("Command failed.")
		os.Exit(1)
	}
}
