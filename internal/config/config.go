package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	GinMode       string
	UploadDir     string
	UploadURLPath string
	AdminUsername string
	AdminPassword string
	SessionTTL    time.Duration
	SeedData      bool
	LogLevel      string
	LogFormat     string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
// 管理员口令默认值仅用于本地开发，线上部署必须覆盖。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "devfolio.db"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if uploadDir == "" {
		uploadDir = "data/uploads"
	}

	uploadURLPath := strings.TrimSpace(os.Getenv("UPLOAD_URL_PATH"))
	if uploadURLPath == "" {
		uploadURLPath = "/uploads"
	}

	adminUsername := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	if adminUsername == "" {
		adminUsername = "admin"
	}

	adminPassword := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD"))
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	// SESSION_TTL 为空或解析失败时令牌永不过期，与单管理员站点的预期一致
	var sessionTTL time.Duration
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			sessionTTL = parsed
		}
	}

	seedData := false
	if raw := strings.TrimSpace(os.Getenv("SEED_DATA")); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			seedData = parsed
		}
	}

	logLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := strings.TrimSpace(os.Getenv("LOG_FORMAT"))
	if logFormat == "" {
		logFormat = "json"
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  databasePath,
		GinMode:       ginMode,
		UploadDir:     uploadDir,
		UploadURLPath: uploadURLPath,
		AdminUsername: adminUsername,
		AdminPassword: adminPassword,
		SessionTTL:    sessionTTL,
		SeedData:      seedData,
		LogLevel:      logLevel,
		LogFormat:     logFormat,
	}
}
