package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"linenotify/internal/di"
	"linenotify/internal/domain/model"
)

func newTokensCommand(configPath *string) *cobra.Command {
	tokensCmd := &cobra.Command{
		Use:   "tokens",
		Short: "Inspect configured LINE Notify tokens",
	}

	tokensCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List token names with masked values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := di.InitializeCredentialStore(*configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			credentials, err := store.ListCredentials(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(credentials) == 0 {
				fmt.Fprintln(out, "No tokens configured")
				return nil
			}
			fmt.Fprintln(out, renderTokens(credentials))
			return nil
		},
	})

	return tokensCmd
}

func renderTokens(credentials []model.Credential) string {
	rows := make([][]string, 0, len(credentials))
	for i, c := range credentials {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), c.Name, c.Masked()})
	}
	return renderTable([]string{"#", "Name", "Token"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft})
}
