package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"pokedex/viewer/internal/config"
	"pokedex/viewer/internal/container"
	"pokedex/viewer/internal/state"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "pokedex",
	Short:         "Browse the creature catalog from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show one page of the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, _ := cmd.Flags().GetInt("offset")
		limit, _ := cmd.Flags().GetInt("limit")
		query, _ := cmd.Flags().GetString("query")
		pages, _ := cmd.Flags().GetInt("pages")

		return withApp(cmd, func(app *container.Container) error {
			if !cmd.Flags().Changed("offset") {
				offset = app.Config.Listing.Offset
			}
			if !cmd.Flags().Changed("limit") {
				limit = app.Config.Listing.Limit
			}

			app.Service.LoadListingAt(offset, limit)
			app.Service.Wait()
			for i := 1; i < pages; i++ {
				if !app.Service.Snapshot().Listing.HasNext() {
					break
				}
				app.Service.LoadNextPage()
				app.Service.Wait()
			}

			snap := app.Service.Snapshot()
			if err := failure(snap); err != nil {
				return err
			}
			renderListing(cmd.OutOrStdout(), snap.Listing, app.Service.Filter(query))
			return nil
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show <name-or-id>",
	Short: "Show one catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(app *container.Container) error {
			app.Service.LoadDetailByQuery(args[0])
			app.Service.Wait()

			snap := app.Service.Snapshot()
			if err := failure(snap); err != nil {
				return err
			}
			renderDetail(cmd.OutOrStdout(), snap.Detail)
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default ./config.yaml)")

	listCmd.Flags().Int("offset", 0, "index of the first entry (default from config)")
	listCmd.Flags().Int("limit", 0, "number of entries per page (default from config)")
	listCmd.Flags().StringP("query", "q", "", "only show entries whose name contains query, or whose ID equals it")
	listCmd.Flags().Int("pages", 1, "number of pages to follow")

	rootCmd.AddCommand(listCmd, showCmd)
}

func withApp(cmd *cobra.Command, run func(app *container.Container) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log.Debug("Configuration loaded successfully")

	app, err := container.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	return run(app)
}

func failure(snap state.Snapshot) error {
	if snap.Error == nil {
		return nil
	}
	return errors.New(snap.Error.Message)
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		renderError(os.Stderr, err.Error())
		stop()
		os.Exit(1)
	}
}
