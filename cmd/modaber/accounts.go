package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/modaber/modaber/internal/cli"
	"github.com/modaber/modaber/internal/model"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage registered accounts",
	}
	cmd.AddCommand(accountsListCmd())
	return cmd
}

func accountsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			creds, err := store.ListCredentials(ctx)
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			return renderAccounts(os.Stdout, creds)
		},
	}
}

// renderAccounts writes the account table.
func renderAccounts(out io.Writer, creds []model.StoredCredential) error {
	if len(creds) == 0 {
		fmt.Fprintln(out, cli.SubtleStyle.Render("No accounts registered."))
		return nil
	}

	fmt.Fprintln(out, cli.TitleStyle.Render("Registered accounts"))
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EMAIL\tNAME\tTYPE\tCREATED")
	for _, c := range creds {
		kind := "password"
		if c.Social {
			kind = "social"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Email, c.Name, kind, c.CreatedAt.Format("2006-01-02"))
	}
	return w.Flush()
}
