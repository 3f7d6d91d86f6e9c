package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/connect4-solver/internal/api/request"
	"github.com/mcoot/connect4-solver/internal/api/response"
	"github.com/mcoot/connect4-solver/internal/factory"
	"github.com/mcoot/connect4-solver/internal/model"
)

// solveFlags are shared by solve and analyze
type solveFlags struct {
	weak    bool
	remote  bool
	timeout time.Duration
}

func (f *solveFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.weak, "weak", "w", false, "Weak solve: only win, draw or loss")
	cmd.Flags().BoolVar(&f.remote, "remote", false, "Solve on the server instead of locally")
	cmd.Flags().DurationVar(&f.timeout, "timeout", factory.DefaultSolveTimeout, "Give up on a local solve after this long")
}

func (f *solveFlags) mode() string {
	if f.weak {
		return model.ModeWeak
	}
	return model.ModeStrong
}

func (f *solveFlags) app() (*factory.App, error) {
	return factory.New(factory.Config{Logger: logger, SolveTimeout: f.timeout})
}

func sequenceArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func newSolveCmd() *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "solve [moves]",
		Short: "Solve a position",
		Long: `Solve the position reached by playing the given moves. With no moves the
empty board is solved, which takes a very long time.

The score is from the point of view of the player to move: positive when
they can force a win, zero for a draw, negative for a loss. Its magnitude
counts how early the game is decided.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := sequenceArg(args)
			var result response.Solve

			if flags.remote {
				req := request.SolveRequest{Sequence: seq, Mode: flags.mode()}
				if err := client.Post(cmd.Context(), "/api/v1/solve", req, &result); err != nil {
					return err
				}
			} else {
				app, err := flags.app()
				if err != nil {
					return err
				}
				r, err := app.SolverService.Solve(cmd.Context(), seq, flags.mode())
				if err != nil {
					return err
				}
				result = response.SolveFromModel(r)
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "analyze [moves]",
		Short: "Score every playable column of a position",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := sequenceArg(args)
			var result response.Analysis

			if flags.remote {
				req := request.AnalyzeRequest{Sequence: seq, Mode: flags.mode()}
				if err := client.Post(cmd.Context(), "/api/v1/analyze", req, &result); err != nil {
					return err
				}
			} else {
				app, err := flags.app()
				if err != nil {
					return err
				}
				a, err := app.SolverService.AnalyzeMoves(cmd.Context(), seq, flags.mode())
				if err != nil {
					return err
				}
				result = response.AnalysisFromModel(a)
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
