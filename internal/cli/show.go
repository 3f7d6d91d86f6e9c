package cli

import (
	"errors"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/connect4-solver/internal/api/request"
	"github.com/mcoot/connect4-solver/internal/api/response"
	"github.com/mcoot/connect4-solver/internal/factory"
	"github.com/mcoot/connect4-solver/internal/model"
)

func newShowCmd() *cobra.Command {
	var (
		field   string
		remote  bool
		analyze bool
		weak    bool
	)

	cmd := &cobra.Command{
		Use:   "show [moves]",
		Short: "Render a position",
		Long: `Render the position reached by playing the given moves, or the position
described by --field: 42 comma separated cells listed row by row from the
top-left, "." for empty, "0" for the first player and "1" for the second.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if field != "" && len(args) > 0 {
				return errors.New("give either moves or --field, not both")
			}
			if analyze && field == "" {
				return errors.New("--analyze needs --field; use the analyze command for move sequences")
			}
			seq := sequenceArg(args)
			mode := model.ModeStrong
			if weak {
				mode = model.ModeWeak
			}

			var result response.Position
			switch {
			case remote && field != "":
				req := request.FieldRequest{Field: field, Analyze: analyze, Mode: mode}
				if err := client.Post(cmd.Context(), "/api/v1/position/field", req, &result); err != nil {
					return err
				}
			case remote:
				if err := client.Get(cmd.Context(), "/api/v1/position?moves="+url.QueryEscape(seq), &result); err != nil {
					return err
				}
			case field != "":
				pos, err := model.PositionFromField(field)
				if err != nil {
					return err
				}
				result = response.PositionFromModel(pos, "")
				if analyze {
					app, err := factory.New(factory.Config{Logger: logger})
					if err != nil {
						return err
					}
					a, err := app.SolverService.AnalyzePosition(cmd.Context(), pos, "", mode)
					if err != nil {
						return err
					}
					analysis := response.AnalysisFromModel(a)
					result.Analysis = &analysis
				}
			default:
				pos, err := model.PositionFromMoves(seq)
				if err != nil {
					return err
				}
				result = response.PositionFromModel(pos, seq)
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&field, "field", "", "Board field instead of a move sequence")
	cmd.Flags().BoolVar(&analyze, "analyze", false, "Also score every playable column (with --field)")
	cmd.Flags().BoolVarP(&weak, "weak", "w", false, "Weak analysis: only win, draw or loss")
	cmd.Flags().BoolVar(&remote, "remote", false, "Ask the server instead of working locally")

	return cmd
}
