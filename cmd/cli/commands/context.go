package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/openrota/weekshift/internal/config"
	"github.com/openrota/weekshift/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands.
// The calendar client is created on demand by the import command so that
// commands that never touch Google work without credentials.
type AppContext struct {
	Cfg      *config.Config
	Database *postgres.DB
	Logger   *zap.Logger
	Ctx      context.Context
}
