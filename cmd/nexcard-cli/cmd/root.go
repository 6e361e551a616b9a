// Package cmd holds the nexcard-cli commands.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/nexcard/nexcard/internal/auth"
	"github.com/nexcard/nexcard/internal/cards"
	"github.com/nexcard/nexcard/internal/config"
	"github.com/nexcard/nexcard/internal/database"
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/pubsub"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// options are the flags shared by every command.
type options struct {
	store string
	dir   string
	user  string
	fs    afero.Fs
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fsys afero.Fs) *cobra.Command {
	o := &options{fs: fsys}
	root := &cobra.Command{
		Use:   "nexcard-cli",
		Short: "NexCard command line tool",
		Long: `nexcard-cli works with NexCard business cards from the terminal.

Available commands:
  themes    List the card themes
  cards     List and duplicate saved cards
  create    Create a card with the interactive wizard
  version   Print the version

The card store defaults to CARD_STORE and CARD_STORE_DIR from the environment
or .env. The memory store starts from the demo cards on every run.

Use "nexcard-cli [command] --help" for more information about a command.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&o.store, "store", "", "card store: memory, file or surreal (default $CARD_STORE)")
	root.PersistentFlags().StringVar(&o.dir, "dir", "", "directory of the file store (default $CARD_STORE_DIR)")
	root.PersistentFlags().StringVar(&o.user, "user", auth.MockUserID, "owner of the cards")

	root.AddCommand(newVersionCmd(), newThemesCmd(), newCardsCmd(o), newCreateCmd(o))
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// service opens the configured card store. The returned func releases it.
func (o *options) service(ctx context.Context) (*cards.Service, func(), error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}
	store := o.store
	if store == "" {
		store = cfg.GetCardStore()
	}
	dir := o.dir
	if dir == "" {
		dir = cfg.GetCardStoreDir()
	}

	closers := []func(){}
	release := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var repo domain.CardRepository
	switch store {
	case config.StoreMemory:
		repo = database.NewMemoryCardRepository(database.SeedCards(), 0)
	case config.StoreFile:
		fileRepo, err := database.NewFileCardRepository(o.fs, dir)
		if err != nil {
			return nil, nil, err
		}
		if _, err := fileRepo.SeedIfEmpty(ctx, database.SeedCards()); err != nil {
			return nil, nil, fmt.Errorf("seed card store: %w", err)
		}
		repo = fileRepo
	case config.StoreSurreal:
		db, err := database.NewSurrealDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { _ = db.Close(context.Background()) })
		repo = database.NewSurrealCardRepository(db, cfg.GetDBQueryTimeout(), cfg.GetDBExecuteTimeout())
	default:
		return nil, nil, fmt.Errorf("unknown card store %q", store)
	}

	bus := pubsub.NewWatermillBridge()
	closers = append(closers, func() { _ = bus.Close() })
	return cards.NewService(repo, bus), release, nil
}
