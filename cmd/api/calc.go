package main

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"dog-years/internal/adapters/calcapi"
	"dog-years/internal/domain/dogage"
	"dog-years/internal/platform/metrics"

	"github.com/spf13/cobra"
)

type calcOutput struct {
	HumanAge    int     `json:"humanAge"`
	Description string  `json:"description"`
	LifeStage   string  `json:"lifeStage"`
	DogAge      float64 `json:"dogAge"`
	Size        string  `json:"size"`
}

func calcCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		age      string
		birthday string
		size     string
		asJSON   bool
		server   string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Converts a dog age to human years",
		Example: "  dog-years calc --age 2.5 --size medium\n" +
			"  dog-years calc --birthday 2021-05-01 --size large --json\n" +
			"  dog-years calc --age 3 --server http://localhost:8080",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := dogage.Input{Birthday: birthday, Size: size}
			if age != "" {
				v, err := strconv.ParseFloat(age, 64)
				if err != nil {
					return errors.New("age must be a number")
				}
				if err := dogage.ValidateAge(v); err != nil {
					return err
				}
				in.DogAge = &v
			}
			if in.DogAge == nil && in.Birthday == "" {
				return errors.New("either --age or --birthday is required")
			}

			var (
				res dogage.Calculation
				err error
			)
			if server != "" {
				client, cerr := calcapi.NewClient(calcapi.Config{BaseURL: server, Timeout: timeout})
				if cerr != nil {
					return cerr
				}
				res, err = client.Calculate(ctx, in)
			} else {
				res, err = dogage.NewService(metrics.Calculator{}).Calculate(ctx, in)
			}
			if err != nil {
				return err
			}

			out := calcOutput{
				HumanAge:    res.HumanAge,
				Description: res.Description,
				LifeStage:   res.LifeStage,
				DogAge:      res.DogAge,
				Size:        string(res.Size),
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			cmd.Printf("%g dog years (%s) = %d human years, %s [%s]\n",
				out.DogAge, out.Size, out.HumanAge, out.Description, out.LifeStage)
			return nil
		},
	}

	cmd.Flags().StringVar(&age, "age", "", "Dog age in years (e.g. 2.5)")
	cmd.Flags().StringVar(&birthday, "birthday", "", "Birthday as YYYY-MM-DD, wins over --age")
	cmd.Flags().StringVar(&size, "size", string(dogage.SizeMedium), "small | medium | large")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.Flags().StringVar(&server, "server", "", "Base URL of a running dog-years API")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Timeout for --server requests")

	return cmd
}
