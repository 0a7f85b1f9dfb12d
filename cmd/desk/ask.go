package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/power-desk/internal/cli"
	"github.com/spf13/cobra"
)

func askCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "ask [query]",
		Short: "Answer a single customer query",
		Long: `Classify a customer query and print the canned reply with a waiting number.

When --account is given the reply is gated on it being non-blank, as on the
dashboard.`,
		Example: `  desk ask "my token has not been received"
  desk ask --account 1234567 no power since morning`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := newPipeline(cfg)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			var reply string
			if cmd.Flags().Changed("account") {
				reply, err = pipeline.Respond(cmd.Context(), account, query)
			} else {
				reply, err = pipeline.Handle(cmd.Context(), query)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatReply(reply))
			return nil
		},
	}

	cmd.Flags().StringVarP(&account, "account", "a", "", "meter or account number")

	return cmd
}
