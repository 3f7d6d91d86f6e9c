package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/connect4-solver/internal/factory"
)

func newGenerateCmd() *cobra.Command {
	var (
		count int
		moves int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random move sequences for benchmarking",
		Long: `Generate random move sequences, one per line, that can be piped into the
batch command. No generated move completes four in a row, so every sequence
is a valid position.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory.New(factory.Config{Logger: logger})
			if err != nil {
				return err
			}

			seqs, err := app.GeneratorService.Sequences(count, moves)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(Sequences{Moves: moves, Sequences: seqs})
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of sequences")
	cmd.Flags().IntVarP(&moves, "moves", "m", 28, "Moves per sequence")

	return cmd
}
