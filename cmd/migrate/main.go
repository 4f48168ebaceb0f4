package main

import (
	"os"

	"go.uber.org/zap"

	"maricoleta.org/internal/migrate"
	"maricoleta.org/internal/obs"
	"maricoleta.org/internal/store/pg"
	"maricoleta.org/migrations"
)

func main() {
	obs.Init()
	logger := obs.Logger()
	defer obs.Sync()

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	dsn := os.Getenv("MARICOLETA_PG_DSN")
	if dsn == "" {
		logger.Fatal("MARICOLETA_PG_DSN is required")
	}

	store, err := pg.Open(dsn)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	switch direction {
	case "up":
		err = migrate.Up(store.DB(), migrations.FS)
	case "down":
		err = migrate.Down(store.DB(), migrations.FS)
	default:
		logger.Fatal("unknown direction, want up or down", zap.String("direction", direction))
	}
	if err != nil {
		logger.Fatal("migrate", zap.Error(err), zap.String("direction", direction))
	}
	logger.Info("migrations applied", zap.String("direction", direction))
}
