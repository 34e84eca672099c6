package main

import (
	"fmt"

	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/db"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/library"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/repository"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// env is how a command reaches the store. Tests swap both funcs.
type env struct {
	loadConfig func() (*config.Config, error)
	openDB     func(*config.Config) (*gorm.DB, error)
}

func defaultEnv() env {
	return env{loadConfig: config.Load, openDB: db.Open}
}

type session struct {
	cfg     *config.Config
	db      *gorm.DB
	catalog *library.Catalog
	lending *library.Lending
}

func (e env) connect() (*session, error) {
	cfg, err := e.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	gdb, err := e.openDB(cfg)
	if err != nil {
		return nil, err
	}

	store := repository.NewGormStore(gdb)
	return &session{
		cfg:     cfg,
		db:      gdb,
		catalog: library.NewCatalog(store),
		lending: library.NewLending(store, cfg.BorrowLimit),
	}, nil
}

func newRootCmd(e env) *cobra.Command {
	root := &cobra.Command{
		Use:          "libraryctl",
		Short:        "Administer the Shelfshare lending store",
		SilenceUsage: true,
	}

	root.AddCommand(
		newMigrateCmd(e),
		newSeedCmd(e),
		newReportCmd(e),
	)

	return root
}
