package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skysheng7/sea-otter-social-analysis/internal/analysis"
	"github.com/skysheng7/sea-otter-social-analysis/internal/dataset"
	"github.com/skysheng7/sea-otter-social-analysis/internal/report"
)

var (
	behBehavior string
	behGroupBy  string
)

var behaviorCmd = &cobra.Command{
	Use:   "behavior <observations.csv>",
	Short: "Summarize one behavior category with a group-by breakdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := dataset.ReadCSVFile(args[0])
		if err != nil {
			return err
		}
		groupBy := dataset.Column(behGroupBy)
		if !groupBy.Categorical() {
			return fmt.Errorf("unsupported --group-by: %s (must be a categorical column)", behGroupBy)
		}

		filtered, err := analysis.FilterByCategory(table, dataset.ColBehavior, behBehavior)
		if err != nil {
			return err
		}
		summary, err := analysis.DescribeNumeric(filtered, dataset.ColDuration)
		if err != nil {
			return err
		}
		groups, err := analysis.GroupAggregate(filtered, []dataset.Column{groupBy}, dataset.ColDuration)
		if err != nil {
			return err
		}

		rep := report.Behavior{
			Behavior: behBehavior,
			Summary:  summary,
			GroupBy:  groupBy,
			Groups:   groups,
		}
		fmt.Fprint(cmd.OutOrStdout(), rep.Markdown())
		return nil
	},
}

func init() {
	behaviorCmd.Flags().StringVar(&behBehavior, "behavior", "grooming", "behavior category to summarize")
	behaviorCmd.Flags().StringVar(&behGroupBy, "group-by", string(dataset.ColLocation), "categorical column for the breakdown")
	rootCmd.AddCommand(behaviorCmd)
}
