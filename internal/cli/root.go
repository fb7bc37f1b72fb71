// Package cli contains the Cobra commands of uuidgen.
package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/NutshellEngineering/uuid"
	"github.com/NutshellEngineering/uuid/internal/config"
	"github.com/NutshellEngineering/uuid/internal/log"
	"github.com/NutshellEngineering/uuid/internal/store"
)

// keyStore is the part of *store.Store the store command needs.
type keyStore interface {
	Migrate(ctx context.Context) error
	Save(ctx context.Context, ids ...uuid.UUID) error
	Latest(ctx context.Context, n int) ([]uuid.UUID, error)
	Close() error
}

type storeOpener func(ctx context.Context, cfg store.Config, logger *slog.Logger) (keyStore, error)

func openMySQL(ctx context.Context, cfg store.Config, logger *slog.Logger) (keyStore, error) {
	return store.Open(ctx, cfg, store.WithLogger(logger))
}

// app is the state shared by every command of one invocation. It is filled
// in by the root command's PersistentPreRunE.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	gen       *uuid.Generator
	openStore storeOpener
}

// NewRoot constructs the uuidgen root command with all subcommands attached.
func NewRoot() *cobra.Command {
	return newRoot(&app{openStore: openMySQL})
}

func newRoot(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "uuidgen",
		Short:        "Generate, inspect and order RFC 9562 UUIDs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "Config file (yaml, toml or json)")
	root.PersistentFlags().String("log-level", "warn", "Log level: debug|info|warn|error")
	root.PersistentFlags().String("log-format", "text", "Log format: text|json")

	root.AddCommand(
		newGenCommand(a),
		newInspectCommand(a),
		newSortCommand(a),
		newCompareCommand(a),
		newStoreCommand(a),
	)
	return root
}

// setup loads and validates the configuration, then builds the logger and
// the generator from it.
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = log.New(
		log.WithLevel(cfg.Log.Level),
		log.WithFormat(cfg.Log.Format),
		log.WithWriter(cmd.ErrOrStderr()),
	)

	opts := []uuid.AllocatorOption{uuid.WithLogger(a.logger)}
	if node, ok, _ := cfg.ResolveNode(); ok {
		opts = append(opts, uuid.WithNode(node))
	}
	a.gen = uuid.NewGeneratorWithAllocator(uuid.NewAllocator(opts...), nil)
	return nil
}
