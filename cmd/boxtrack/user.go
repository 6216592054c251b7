package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the people allowed to log in",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <first> <last>",
			Short: "Allow a person to log in",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				st, closeDB, err := a.openStore(cmd.Context())
				if err != nil {
					return err
				}
				defer closeDB()

				user, err := st.CreateUser(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added user %s\n", user.FullName())
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List users",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				st, closeDB, err := a.openStore(cmd.Context())
				if err != nil {
					return err
				}
				defer closeDB()

				users, err := st.ListUsers(cmd.Context())
				if err != nil {
					return err
				}

				t := newTable(cmd.OutOrStdout(), table.Row{"First name", "Last name"})
				for _, u := range users {
					t.AppendRow(table.Row{u.FirstName, u.LastName})
				}
				t.AppendFooter(table.Row{"Total", len(users)})
				t.Render()
				return nil
			},
		},
		&cobra.Command{
			Use:     "remove <first> <last>",
			Aliases: []string{"rm"},
			Short:   "Revoke a person's access",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				st, closeDB, err := a.openStore(cmd.Context())
				if err != nil {
					return err
				}
				defer closeDB()

				if err := st.DeleteUser(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed user %s %s\n", args[0], args[1])
				return nil
			},
		},
	)
	return cmd
}
