package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adminapp "github.com/markbaxman/WightCars-sub000/application/admin"
	carapp "github.com/markbaxman/WightCars-sub000/application/car"
	favoriteapp "github.com/markbaxman/WightCars-sub000/application/favorite"
	messageapp "github.com/markbaxman/WightCars-sub000/application/message"
	reportapp "github.com/markbaxman/WightCars-sub000/application/report"
	userapp "github.com/markbaxman/WightCars-sub000/application/user"
	"github.com/markbaxman/WightCars-sub000/cmd/config"
	redisclient "github.com/markbaxman/WightCars-sub000/cmd/redis"
	_ "github.com/markbaxman/WightCars-sub000/docs"
	adminlogRepo "github.com/markbaxman/WightCars-sub000/repository/adminlog"
	carRepo "github.com/markbaxman/WightCars-sub000/repository/car"
	favoriteRepo "github.com/markbaxman/WightCars-sub000/repository/favorite"
	messageRepo "github.com/markbaxman/WightCars-sub000/repository/message"
	redisRepo "github.com/markbaxman/WightCars-sub000/repository/redis"
	reportRepo "github.com/markbaxman/WightCars-sub000/repository/report"
	settingRepo "github.com/markbaxman/WightCars-sub000/repository/setting"
	statsRepo "github.com/markbaxman/WightCars-sub000/repository/stats"
	txRepo "github.com/markbaxman/WightCars-sub000/repository/tx"
	userRepo "github.com/markbaxman/WightCars-sub000/repository/user"
	"github.com/markbaxman/WightCars-sub000/transport"
	"github.com/markbaxman/WightCars-sub000/utils/logger"
	"go.uber.org/zap"
)

// @title WIGHTCARS API
// @version 1.0
// @description Regional car classifieds marketplace API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.InitWithRotation(cfg.Environment, logger.RotateOptions{
		Filename:   cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Open the database. With fallback mode enabled an unreachable store
	// must not stop the server: read paths serve the static dataset until
	// the database comes back.
	db, err := sqlx.Open("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err open db", zap.Error(err))
	}
	if err := db.Ping(); err != nil {
		if !cfg.Fallback.Enabled {
			logger.Fatal("err connect db", zap.Error(err))
		}
		logger.Warn("db unreachable, serving degraded reads", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		if !cfg.Fallback.Enabled {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		logger.Warn("redis unreachable, sessions unavailable", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	CarRepo := carRepo.NewCarRepository(db)
	FavoriteRepo := favoriteRepo.NewFavoriteRepository(db)
	MessageRepo := messageRepo.NewMessageRepository(db)
	ReportRepo := reportRepo.NewReportRepository(db)
	AdminLogRepo := adminlogRepo.NewAdminLogRepository(db)
	StatsRepo := statsRepo.NewStatsRepository(db)
	SettingRepo := settingRepo.NewSettingRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	CarApp := carapp.NewCarApp(cfg, CarRepo)
	FavoriteApp := favoriteapp.NewFavoriteApp(FavoriteRepo, CarRepo)
	MessageApp := messageapp.NewMessageApp(MessageRepo, CarRepo)
	ReportApp := reportapp.NewReportApp(ReportRepo, CarRepo, UserRepo)
	AdminApp := adminapp.NewAdminApp(TxRepo, UserRepo, CarRepo, ReportRepo, AdminLogRepo, StatsRepo, SettingRepo)

	httpTransport := transport.NewTransport(cfg, UserApp, CarApp, FavoriteApp, MessageApp, ReportApp, AdminApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
