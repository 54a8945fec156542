package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/modaber/modaber/internal/cli"
	"github.com/modaber/modaber/internal/storage"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all registered accounts and saved preferences",
		Long: `Reset wipes the local database: every registered account and every saved
preference is deleted. The database file itself is kept.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			return performReset(ctx, store, os.Stdin, os.Stdout, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}

// performReset wipes the database, asking for confirmation first unless
// force is set.
func performReset(ctx context.Context, store *storage.SQLiteStorage, in io.Reader, out io.Writer, force bool) error {
	creds, err := store.ListCredentials(ctx)
	if err != nil {
		return fmt.Errorf("failed to count accounts: %w", err)
	}

	if !force {
		fmt.Fprintln(out, cli.FormatWarning(
			fmt.Sprintf("This will delete %d account(s) and all saved preferences.", len(creds))))

		ok, err := cli.Confirm(ctx, in, out, "Are you sure you want to continue?")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			fmt.Fprintln(out, "Reset canceled.")
			return nil
		}
	}

	if err := store.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}

	fmt.Fprintln(out, cli.FormatSuccess("Database reset."))
	return nil
}
