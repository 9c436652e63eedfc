package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"recipebox/internal/config"
	"recipebox/internal/pkg/logx"
	mysqlClient "recipebox/internal/platform/mysql"
	rabbitmqClient "recipebox/internal/platform/rabbitmq"
	redisClient "recipebox/internal/platform/redis"
	"recipebox/internal/repository"
	"recipebox/internal/worker"
)

type App struct {
	Config *config.Config
	Logger *slog.Logger
	MySQL  *gorm.DB
	Redis  *redis.Client

	// MQConn and the activity pieces stay nil when the feed is disabled.
	MQConn            *amqp.Connection
	ActivityPublisher *rabbitmqClient.ActivityPublisher
	ActivityWorker    *worker.ActivityPersistWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	logger := logx.New(logx.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
	})
	slog.SetDefault(logger)

	app := &App{
		Config:    cfg,
		Logger:    logger,
		StartedAt: time.Now(),
	}

	app.MySQL, err = mysqlClient.New(ctx, cfg.MySQLDSN(), logger)
	if err != nil {
		return nil, app.abort(err)
	}
	if err := repository.AutoMigrate(app.MySQL); err != nil {
		return nil, app.abort(err)
	}

	app.Redis, err = redisClient.New(ctx, redisClient.Options{
		Addr:       cfg.Redis.Addr,
		Password:   cfg.Redis.Password,
		DB:         cfg.Redis.DB,
		ClientName: cfg.App.Name,
	})
	if err != nil {
		return nil, app.abort(err)
	}

	if cfg.RabbitMQ.URL == "" {
		logger.Info("activity feed disabled")
		return app, nil
	}

	app.MQConn, err = rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
	if err != nil {
		return nil, app.abort(err)
	}
	app.ActivityPublisher = rabbitmqClient.NewActivityPublisher(app.MQConn, cfg.RabbitMQ.ActivityQueue)

	activityRepo := repository.NewActivityRepository(app.MySQL)
	app.ActivityWorker = worker.NewActivityPersistWorker(app.MQConn, activityRepo, cfg.RabbitMQ.ActivityQueue, logger)
	if err := app.ActivityWorker.Start(ctx); err != nil {
		return nil, app.abort(fmt.Errorf("start activity worker failed: %w", err))
	}

	return app, nil
}

// abort releases whatever New managed to open before failing.
func (a *App) abort(err error) error {
	if closeErr := a.Close(); closeErr != nil {
		return errors.Join(err, closeErr)
	}
	return err
}

func (a *App) Close() error {
	var errs []error
	if a.ActivityWorker != nil {
		a.ActivityWorker.Close()
	}
	if a.ActivityPublisher != nil {
		if err := a.ActivityPublisher.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.MQConn != nil && !a.MQConn.IsClosed() {
		if err := a.MQConn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
