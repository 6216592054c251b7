package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/erazemk/boxtrack/internal/model"
	"github.com/erazemk/boxtrack/internal/qr"
)

func newBoxCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "box",
		Short: "Manage boxes and print their QR codes",
	}
	cmd.AddCommand(newBoxAddCmd(a), newBoxListCmd(a), newBoxQRCmd(a))
	return cmd
}

// parseBox reads the <size> <num> argument pair.
func parseBox(args []string) (string, int64, error) {
	num, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || num < 0 {
		return "", 0, fmt.Errorf("invalid box number %q", args[1])
	}
	if args[0] == "" {
		return "", 0, errors.New("box size required")
	}
	return args[0], num, nil
}

func newBoxAddCmd(a *app) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "add <size> <num>",
		Short: "Register a box",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, num, err := parseBox(args)
			if err != nil {
				return err
			}

			st, closeDB, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			box, err := st.CreateBox(cmd.Context(), size, num, status)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added box %s (%s)\n", box.Label(), box.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", model.StatusAway, "initial location, or away")
	return cmd
}

func newBoxListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List boxes and where they are",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, closeDB, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			boxes, err := st.ListBoxes(cmd.Context())
			if err != nil {
				return err
			}

			away := 0
			t := newTable(cmd.OutOrStdout(), table.Row{"Size", "Number", "Status", "Last move"})
			for _, b := range boxes {
				if b.IsAway() {
					away++
				}
				last, err := st.LatestLog(cmd.Context(), b.Size, b.Number)
				if err != nil {
					return err
				}
				moved := "never"
				if last != nil {
					moved = fmt.Sprintf("%s by %s", humanize.Time(last.Timestamp), last.Actor().FullName())
				}
				t.AppendRow(table.Row{b.Size, b.Number, b.Status, moved})
			}
			t.AppendFooter(table.Row{"Total", len(boxes), fmt.Sprintf("%d away", away), ""})
			t.Render()
			return nil
		},
	}
}

func newBoxQRCmd(a *app) *cobra.Command {
	var (
		output  string
		baseURL string
		px      int
		label   bool
	)

	cmd := &cobra.Command{
		Use:   "qr <size> <num>",
		Short: "Write a box's QR code to a PNG file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, num, err := parseBox(args)
			if err != nil {
				return err
			}
			if baseURL == "" {
				baseURL = a.cfg.BaseURL
			}
			if baseURL == "" {
				return errors.New("base URL required (set --base-url or BOXTRACK_BASE_URL)")
			}
			if output == "" {
				output = fmt.Sprintf("box-%s-%d.png", size, num)
			}

			st, closeDB, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			box, err := st.GetBox(cmd.Context(), size, num)
			if err != nil {
				return err
			}

			target := qr.ScanURL(baseURL, box.Size, box.Number)
			var data []byte
			if label {
				data, err = qr.EncodeLabeled(target, box.Label(), px)
			} else {
				data, err = qr.Encode(target, px)
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s -> %s\n", output, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (default box-<size>-<num>.png)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "public URL of the server (default from BOXTRACK_BASE_URL)")
	cmd.Flags().IntVar(&px, "px", qr.DefaultSize, "image size in pixels")
	cmd.Flags().BoolVar(&label, "label", false, "print the box name under the code")
	return cmd
}
