package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tagfold/server/aggregate"
	"github.com/tagfold/server/config"
	"github.com/tagfold/server/domain"
)

var (
	aggTags    []string
	aggAll     bool
	aggPrivacy []string
	aggFrom    string
	aggTo      string
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Combine matching notes into one aggregate file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !aggAll && len(aggTags) == 0 {
			return fmt.Errorf("pass --tag at least once, or --all to match every note")
		}

		cfg, err := config.Load(logger)
		if err != nil {
			return err
		}

		tagFilter := domain.MatchAll()
		if !aggAll {
			tagFilter = domain.MatchAny(aggTags)
		}

		result, err := aggregate.New(logger).Aggregate(domain.FilterSpec{
			NotesDir:       cfg.NotesDir,
			AggregatesDir:  cfg.AggregatesDir,
			RequiredTags:   tagFilter,
			AllowedPrivacy: aggPrivacy,
			StartDate:      aggFrom,
			EndDate:        aggTo,
		})
		if err != nil {
			return err
		}

		fmt.Printf("wrote %s (%d of %d scanned notes included)\n",
			result.OutputPath, result.NotesIncluded, result.FilesScanned)
		return nil
	},
}

func init() {
	aggregateCmd.Flags().StringArrayVarP(&aggTags, "tag", "t", nil, "required tag (repeatable; a note needs at least one)")
	aggregateCmd.Flags().BoolVar(&aggAll, "all", false, "match every note regardless of tags")
	aggregateCmd.Flags().StringArrayVar(&aggPrivacy, "privacy", nil, "allowed privacy level (repeatable; none = no constraint)")
	aggregateCmd.Flags().StringVar(&aggFrom, "from", "", "inclusive lower date bound (YYYY-MM-DD)")
	aggregateCmd.Flags().StringVar(&aggTo, "to", "", "inclusive upper date bound (YYYY-MM-DD)")
	rootCmd.AddCommand(aggregateCmd)
}
