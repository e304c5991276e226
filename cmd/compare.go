package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skysheng7/sea-otter-social-analysis/internal/analysis"
	"github.com/skysheng7/sea-otter-social-analysis/internal/dataset"
	"github.com/skysheng7/sea-otter-social-analysis/internal/report"
	"github.com/skysheng7/sea-otter-social-analysis/internal/stats"
)

var (
	cmpBehaviorA string
	cmpBehaviorB string
	cmpAlpha     float64
)

var compareCmd = &cobra.Command{
	Use:   "compare <observations.csv>",
	Short: "Compare durations of two behaviors with a Mann-Whitney U test",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := effectiveConfig()
		if err != nil {
			return err
		}
		alpha := cmpAlpha
		if !cmd.Flags().Changed("alpha") {
			alpha = c.Alpha
		}
		table, err := dataset.ReadCSVFile(args[0])
		if err != nil {
			return err
		}

		a, err := behaviorDurations(table, cmpBehaviorA)
		if err != nil {
			return err
		}
		b, err := behaviorDurations(table, cmpBehaviorB)
		if err != nil {
			return err
		}

		res, err := stats.MannWhitneyU(a, b)
		var insufficient *stats.InsufficientDataError
		if errors.As(err, &insufficient) {
			// Not an abort: one of the behaviors simply has no observations.
			fmt.Fprintf(cmd.OutOrStdout(), "Skipping test: %v\n", err)
			return nil
		}
		if err != nil {
			return err
		}

		rep := report.Comparison{
			BehaviorA: cmpBehaviorA,
			BehaviorB: cmpBehaviorB,
			CountA:    len(a),
			CountB:    len(b),
			Result:    res,
			Alpha:     alpha,
		}
		fmt.Fprint(cmd.OutOrStdout(), rep.Markdown())
		return nil
	},
}

func behaviorDurations(t *dataset.Table, behavior string) ([]float64, error) {
	filtered, err := analysis.FilterByCategory(t, dataset.ColBehavior, behavior)
	if err != nil {
		return nil, err
	}
	return filtered.Numeric(dataset.ColDuration)
}

func init() {
	compareCmd.Flags().StringVar(&cmpBehaviorA, "a", "grooming", "first behavior category")
	compareCmd.Flags().StringVar(&cmpBehaviorB, "b", "play", "second behavior category")
	compareCmd.Flags().Float64Var(&cmpAlpha, "alpha", 0.05, "significance level for the verdict")
	rootCmd.AddCommand(compareCmd)
}
