package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/erazemk/boxtrack/internal/config"
	"github.com/erazemk/boxtrack/internal/db"
	"github.com/erazemk/boxtrack/internal/store"
)

// app carries the configuration shared by every subcommand.
type app struct {
	envFile string
	cfg     config.Config

	// Flag overrides; empty keeps the configured value.
	dbDriver string
	dbDSN    string
	logPath  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "boxtrack",
		Short:         "Track where boxes are with QR codes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env", ".env", "dotenv file to load (missing file is ignored)")
	flags.StringVar(&a.dbDriver, "db-driver", "", "database driver: sqlite or mysql (default from BOXTRACK_DB_DRIVER)")
	flags.StringVarP(&a.dbDSN, "db", "d", "", "database path or DSN (default from BOXTRACK_DB_DSN)")
	flags.StringVarP(&a.logPath, "log", "l", "", "log file path (default from BOXTRACK_LOG)")

	root.AddCommand(
		newServeCmd(a),
		newUserCmd(a),
		newBoxCmd(a),
		newLogCmd(a),
	)
	return root
}

// loadConfig reads the environment and applies flag overrides.
func (a *app) loadConfig() error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	if a.dbDriver != "" {
		cfg.DBDriver = a.dbDriver
	}
	if a.dbDSN != "" {
		cfg.DBDSN = a.dbDSN
	}
	if a.logPath != "" {
		cfg.LogPath = a.logPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// openStore opens the configured database and makes sure the schema exists.
func (a *app) openStore(ctx context.Context) (*store.Store, func(), error) {
	database, dialect, err := db.Open(a.cfg.DBDriver, a.cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.EnsureSchema(database, dialect); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("ensuring schema: %w", err)
	}
	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("pinging database: %w", err)
	}
	return store.New(database, dialect), func() { database.Close() }, nil
}

// newTable returns a table writer that renders to w.
func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}
