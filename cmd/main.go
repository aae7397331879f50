package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"smart-clinic-portal/cmd/bootstrap"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "clinic",
		Short:        "Smart clinic portal: doctor directory, appointments and sandbox API",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveSandboxCmd())
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(adminCmd())
	rootCmd.AddCommand(doctorCmd())
	rootCmd.AddCommand(patientCmd())
	return rootCmd
}

func serveSandboxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve-sandbox",
		Short: "Start the in-memory clinic API with demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			return app.Run()
		},
	}
}
