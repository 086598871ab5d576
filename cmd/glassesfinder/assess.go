package main

import (
	"errors"
	"fmt"

	"glassesfinder/internal/catalog"
	"glassesfinder/internal/eligibility"
	"glassesfinder/internal/recommend"
	"glassesfinder/pkg/types"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var assessCommand = &cli.Command{
	Name:  "assess",
	Usage: "Run an eligibility assessment from the command line",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:     "household-size",
			Aliases:  []string{"s"},
			Usage:    "Number of people in the household",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "income",
			Aliases:  []string{"i"},
			Usage:    "Annual household income in dollars",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "zip",
			Aliases:  []string{"z"},
			Usage:    "D.C. zip code",
			Required: true,
		},
	},
	Action: runAssess,
}

func runAssess(c *cli.Context) error {
	assessor := eligibility.NewAssessor()

	result, err := assessor.Assess(c.Int("household-size"), c.Int("income"), c.String("zip"))
	if err != nil {
		var valErr *types.ValidationError
		if errors.As(err, &valErr) {
			for _, v := range valErr.Fields {
				fmt.Printf("invalid %s: %s\n", v.Field, v.Message)
			}
			return cli.Exit("assessment inputs are invalid", 1)
		}
		return err
	}

	recommendation, err := recommend.Recommend(catalog.NewDefaultStore().Items(), result.BudgetRange)
	if err != nil {
		return err
	}

	pp.Println(result)

	fmt.Printf("\n%d frames in your %s range:\n", recommendation.TotalOptions, result.BudgetRange.Display())
	for _, item := range recommendation.Top {
		fmt.Printf("  $%-4d %-14s %-12s %s\n", item.PriceCents/100, item.Name, item.FrameStyle, item.Retailer)
	}

	return nil
}
