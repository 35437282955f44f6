package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "labyrinth",
	Short: "Solve shift-and-move maze puzzles from a text layout",
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.AddCommand(solveCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("labyrinth command failed")
	}
}
