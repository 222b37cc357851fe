// Command migrate applies the versioned SQL under db/migrations to the
// configured database. It shells out to the atlas CLI, which must be on
// PATH.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"library-lending/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "file://db/migrations", "migration directory URL")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		logger.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	res, err := client.MigrateApply(context.Background(), &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: *dir,
		DryRun: *dryRun,
	})
	if err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	logger.Info("migrations applied",
		"target", res.Target,
		"applied", len(res.Applied),
		"current", res.Current,
	)
}
