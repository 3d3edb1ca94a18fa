package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hotel_rooms/internal/adapters/console"
	"hotel_rooms/internal/adapters/observability"
	"hotel_rooms/internal/app"
	"hotel_rooms/internal/shared"
	"hotel_rooms/internal/storage/memory"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "roomcli",
		Short:        "Interactive keeper of hotel room costs and discounts",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run()
		},
	}
}

func run() error {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise); stderr only,
	// stdout belongs to the menu
	log.Logger = observability.NewLogger(cfg.AppEnv)

	metricsReg := observability.InitRegistry()
	observability.Serve(metricsReg)

	repo := memory.New()
	reg := app.NewRegistryService(repo)
	q := app.NewQueryService(repo)

	log.Debug().Str("env", cfg.AppEnv).Msg("roomcli starting")
	return console.NewMenu(os.Stdin, os.Stdout, reg, q).Run()
}
