package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/designertech992/stocks-forecast/internal/app"
	"github.com/designertech992/stocks-forecast/internal/config"
	"github.com/designertech992/stocks-forecast/internal/models"
	"github.com/designertech992/stocks-forecast/internal/services"
)

type cli struct {
	configPath string
	owner      string
	app        *app.App
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "forecastctl",
		Short:         "Stock quotes, forecasts and saved predictions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.app, err = app.New(cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.app == nil {
				return nil
			}
			return c.app.Close()
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", os.Getenv("CONFIG_PATH"), "YAML config file")
	root.PersistentFlags().StringVar(&c.owner, "user", "", "Scope predictions to this user ID")

	root.AddCommand(c.quoteCmd(), c.searchCmd(), c.forecastCmd(), c.predictionsCmd())
	return root
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) predictions() services.PredictionService {
	if c.owner != "" {
		return c.app.Predictions.ForOwner(c.owner)
	}
	return c.app.Predictions
}

func (c *cli) quoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote SYMBOL [SYMBOL...]",
		Short: "Show current quotes with 30 days of history",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				res, err := c.app.Quotes.GetQuote(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			}
			res, err := c.app.Quotes.GetQuotes(cmd.Context(), args)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func (c *cli) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Find symbols by ticker or company name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := c.app.Quotes.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), matches)
		},
	}
}

func (c *cli) forecastCmd() *cobra.Command {
	var (
		timeframe string
		save      bool
	)
	cmd := &cobra.Command{
		Use:   "forecast SYMBOL",
		Short: "Forecast a symbol over a timeframe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tf := models.Timeframe(timeframe)

			quote, err := c.app.Quotes.GetQuote(ctx, args[0])
			if err != nil {
				return err
			}
			forecast, err := c.app.Forecasts.GenerateForecast(ctx, quote.Quote.ForecastAsset(), tf)
			if err != nil {
				return err
			}
			if !save {
				return printJSON(cmd.OutOrStdout(), forecast)
			}
			saved, err := c.predictions().Save(ctx, quote.Quote, forecast, tf)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), saved)
		},
	}
	cmd.Flags().StringVarP(&timeframe, "timeframe", "t", string(models.Timeframe7D), "1d, 7d, 14d, 30d or 90d")
	cmd.Flags().BoolVar(&save, "save", false, "Save the forecast as an active prediction")
	return cmd
}

func (c *cli) predictionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predictions",
		Short: "Manage saved predictions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List predictions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.predictions().List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), list)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Insert demo predictions if none exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := c.predictions()
			if err := store.SeedDemoData(cmd.Context()); err != nil {
				return err
			}
			list, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), list)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Show prediction counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := c.predictions().Summary(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), sum)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get ID",
		Short: "Show one prediction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.predictions().GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("prediction %s not found", args[0])
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set a prediction's status (active, completed, failed)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.predictions().UpdateStatus(cmd.Context(), args[0], models.PredictionStatus(args[1]))
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("prediction %s not found", args[0])
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a prediction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := c.predictions().Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("prediction %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	})

	return cmd
}
