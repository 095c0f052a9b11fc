package main

import (
	"github.com/spf13/cobra"

	"linenotify/internal/di"
)

func newRunCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the notification daemon (Jenkins poller and Kafka consumer)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, cleanup, err := di.InitializeApp(*configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			return application.Run(cmd.Context())
		},
	}
}
