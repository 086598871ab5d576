package main

import (
	"fmt"
	"os"

	"glassesfinder/internal/catalog"
	"glassesfinder/internal/eligibility"
	"glassesfinder/internal/export"
	"glassesfinder/internal/recommend"
	"glassesfinder/pkg/types"

	"github.com/urfave/cli/v2"
)

var exportCommand = &cli.Command{
	Name:  "export",
	Usage: "Write the catalog for a tier to a CSV file",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "tier",
			Aliases: []string{"t"},
			Usage:   "Assistance tier (medicaid_eligible, low_income_gap, moderate_income, any_income)",
			Value:   string(types.TierAnyIncome),
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "Output file path",
			Value:   "affordable_glasses.csv",
		},
	},
	Action: runExport,
}

func runExport(c *cli.Context) error {
	tier := types.TierKey(c.String("tier"))
	budget, ok := eligibility.TierBudget(tier)
	if !ok {
		return cli.Exit(fmt.Sprintf("unknown tier %q", tier), 1)
	}

	recommendation, err := recommend.Recommend(catalog.NewDefaultStore().Items(), budget)
	if err != nil {
		return err
	}

	f, err := os.Create(c.String("out"))
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := export.Write(f, string(tier), recommendation.Items); err != nil {
		return err
	}

	fmt.Printf("wrote %d frames to %s\n", recommendation.TotalOptions, c.String("out"))
	return nil
}
