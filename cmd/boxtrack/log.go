package main

import (
	"errors"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/erazemk/boxtrack/internal/model"
)

func newLogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Inspect the checkin and checkout history",
	}

	var (
		size  string
		num   int64
		limit int
	)

	list := &cobra.Command{
		Use:   "list",
		Short: "List moves, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("num") && size == "" {
				return errors.New("--num requires --size")
			}

			st, closeDB, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			entries, err := st.ListLogs(cmd.Context(), size, num, limit)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), table.Row{"#", "Box", "Action", "Status", "By", "When"})
			for _, e := range entries {
				action := "checkin"
				if e.IsCheckout() {
					action = "checkout"
				}
				box := model.Box{Size: e.Size, Number: e.Number}
				t.AppendRow(table.Row{
					e.ID,
					box.Label(),
					action,
					e.Status,
					e.Actor().FullName(),
					humanize.Time(e.Timestamp),
				})
			}
			t.Render()
			return nil
		},
	}

	list.Flags().StringVar(&size, "size", "", "only show this box size")
	list.Flags().Int64Var(&num, "num", 0, "box number (with --size)")
	list.Flags().IntVar(&limit, "limit", 50, "maximum number of entries, 0 for all")

	cmd.AddCommand(list)
	return cmd
}
