package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/connect4-solver/internal/factory"
)

func newBatchCmd() *cobra.Command {
	var weak bool

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Solve move sequences read one per line",
		Long: `Solve every move sequence read from the file, or from stdin when no file
or "-" is given. For each line one output line is written:

  <sequence> <score> <nodes> <nodes per microsecond>

Lines that are not valid sequences produce a diagnostic on stderr and an
empty output line. They do not change the exit status.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			app, err := factory.New(factory.Config{Logger: logger})
			if err != nil {
				return err
			}

			_, err = app.BatchRunner.Run(cmd.Context(), in, cmd.OutOrStdout(), cmd.ErrOrStderr(), weak)
			return err
		},
	}

	cmd.Flags().BoolVarP(&weak, "weak", "w", false, "Weak solve: only win, draw or loss")

	return cmd
}
