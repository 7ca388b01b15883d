package app

import (
	"database/sql"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/yeargrid/yeargrid/internal/config"
	"github.com/yeargrid/yeargrid/internal/event_bus"
	"github.com/yeargrid/yeargrid/internal/utils"
	"github.com/yeargrid/yeargrid/pkg/birthday"
	"github.com/yeargrid/yeargrid/pkg/grid"
	"github.com/yeargrid/yeargrid/pkg/holiday"
	"github.com/yeargrid/yeargrid/pkg/payday"
	"github.com/yeargrid/yeargrid/pkg/wallpaper"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	BirthdayRepo    birthday.Repository
	BirthdayService *birthday.Service
	BirthdayHandler *birthday.Handler

	GridService      *grid.Service
	WallpaperHandler *wallpaper.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
// db may be nil unless the postgres storage backend is configured.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.BirthdayRepo = buildBirthdayRepo(db, cfg.Storage)
	deps.BirthdayService = birthday.NewService(deps.BirthdayRepo, deps.EventBus)
	deps.BirthdayHandler = birthday.NewHandler(deps.BirthdayService)

	deps.GridService = grid.NewService(holiday.NewMalta(), paydaySchedule(cfg.Payday))
	deps.WallpaperHandler = wallpaper.NewHandler(deps.BirthdayService, deps.GridService, deps.Clock, deps.EventBus)

	return deps
}

func buildBirthdayRepo(db *sql.DB, cfg config.Storage) birthday.Repository {
	switch cfg.Backend {
	case "redis":
		return birthday.NewRedisRepository(cfg.Redis.URL, cfg.Redis.Token)
	case "postgres":
		return birthday.NewPostgresRepository(db)
	case "file":
		return birthday.NewFileRepository(cfg.File.Path)
	default:
		log.Warnf("Unknown storage backend %q, falling back to file storage", cfg.Backend)
		return birthday.NewFileRepository(cfg.File.Path)
	}
}

func paydaySchedule(cfg config.Payday) payday.Schedule {
	var anchor time.Time
	if cfg.Anchor != "" {
		parsed, err := time.Parse("2006-01-02", cfg.Anchor)
		if err != nil {
			log.Warnf("Invalid payday anchor %q, using default: %v", cfg.Anchor, err)
		} else {
			anchor = parsed
		}
	}
	return payday.NewSchedule(anchor, cfg.Every)
}
