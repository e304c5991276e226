package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skysheng7/sea-otter-social-analysis/internal/analysis"
	"github.com/skysheng7/sea-otter-social-analysis/internal/dataset"
	"github.com/skysheng7/sea-otter-social-analysis/internal/report"
)

var (
	netTopN      int
	netSelfPairs bool
)

var networkCmd = &cobra.Command{
	Use:   "network <observations.csv>",
	Short: "Rank the most social otters and count interaction pairs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := effectiveConfig()
		if err != nil {
			return err
		}
		table, err := dataset.ReadCSVFile(args[0])
		if err != nil {
			return err
		}

		topN := netTopN
		if !cmd.Flags().Changed("top") {
			topN = c.TopN
		}
		selfPairs := netSelfPairs
		if !cmd.Flags().Changed("self-pairs") {
			selfPairs = c.IncludeSelfPairs
		}

		pairs, err := analysis.PairwiseInteractionCounts(table, dataset.ColSubjectID, dataset.ColPartnerID, c.SocialBehaviors, selfPairs)
		if err != nil {
			return err
		}

		// Rank over the socially filtered rows only, matching the pair counts.
		social := map[string]bool{}
		for _, b := range c.SocialBehaviors {
			social[b] = true
		}
		var socialRows []dataset.Observation
		for i := 0; i < table.Len(); i++ {
			if social[table.Row(i).Behavior] {
				socialRows = append(socialRows, table.Row(i))
			}
		}
		socialTable, err := dataset.NewTable(socialRows)
		if err != nil {
			return err
		}
		top, err := analysis.RankByFrequency(socialTable, dataset.ColSubjectID, topN)
		if err != nil {
			return err
		}

		rep := report.Network{
			TotalSocial: socialTable.Len(),
			TopOtters:   top,
			Pairs:       pairs,
			MaxPairs:    c.MaxPairsShown,
		}
		fmt.Fprint(cmd.OutOrStdout(), rep.Markdown())
		return nil
	},
}

func init() {
	networkCmd.Flags().IntVar(&netTopN, "top", 5, "number of otters in the activity ranking")
	networkCmd.Flags().BoolVar(&netSelfPairs, "self-pairs", false, "count observations where subject and partner are the same otter")
	rootCmd.AddCommand(networkCmd)
}
