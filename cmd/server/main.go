package main

import (
	"github.com/devfolio/internal/auth"
	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/router"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}

	// 确保管理员账号存在
	if err := db.EnsureAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure admin user")
	}

	if cfg.SeedData {
		if err := db.Seed(db.DB); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	sessions := auth.NewManager(cfg.SessionTTL)

	// 设置并运行 Gin 服务器
	r := router.Setup(cfg, db.DB, sessions)
	logger.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal().Err(err).Msg("failed to run server")
	}
}
