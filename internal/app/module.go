package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/gympoint/backoffice/internal/app/api/server"
	"github.com/gympoint/backoffice/internal/app/service/attendance"
	"github.com/gympoint/backoffice/internal/app/service/catalog"
	"github.com/gympoint/backoffice/internal/app/service/mailer"
	"github.com/gympoint/backoffice/internal/app/service/maillog"
	"github.com/gympoint/backoffice/internal/app/service/membership"
	"github.com/gympoint/backoffice/internal/app/service/statistics"
	"github.com/gympoint/backoffice/internal/platform/clock"
	"github.com/gympoint/backoffice/internal/platform/db"
	"github.com/gympoint/backoffice/pkg/config"
	"github.com/gympoint/backoffice/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	clock.Module,
	server.Module,
	catalog.Module,
	membership.Module,
	attendance.Module,
	statistics.Module,
	maillog.Module,
	mailer.Module,
)
