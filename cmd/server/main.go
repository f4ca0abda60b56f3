package main

import (
	"fmt"
	"log"
	"net/http"

	"training-portal/internal/config"
	"training-portal/internal/database"
	"training-portal/internal/logger"
	"training-portal/internal/server"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := logger.Init(cfg.LogFile, cfg.LogLevel); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := database.Init(cfg.DBDSN); err != nil {
		logger.Logger.Fatal("database", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	r, err := server.NewRouter(cfg)
	if err != nil {
		logger.Logger.Fatal("router", zap.Error(err))
	}

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Logger.Info("starting server", zap.String("addr", addr), zap.Bool("csrf", cfg.CSRFEnabled))
	if err := http.ListenAndServe(addr, server.NewHandler(cfg, r)); err != nil {
		logger.Logger.Fatal("server error", zap.Error(err))
	}
}
