package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/power-desk/internal/cli"
	"github.com/Veraticus/power-desk/internal/contacts"
	"github.com/spf13/cobra"
)

func countiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "counties [county]",
		Short: "Show regional office contacts",
		Long: `Without an argument, list every county and its office number.
With a county name, print only that county's contact line.`,
		Args:              cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				contact, err := contacts.Lookup(args[0])
				if err != nil {
					return fmt.Errorf("%w (known: %s)", err, strings.Join(contacts.Names(), ", "))
				}
				fmt.Fprintln(out, contact)
				return nil
			}

			fmt.Fprintln(out, cli.FormatTitle("Regional offices"))
			for _, c := range contacts.Counties() {
				fmt.Fprintf(out, "  %-10s %s\n", c.Name, cli.SubtleStyle.Render(c.Contact))
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Head office: %s | %s | %s\n", contacts.Email, contacts.Phone, contacts.Website)
			return nil
		},
	}
}
