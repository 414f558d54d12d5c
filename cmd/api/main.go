package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Bigsouley03/cat-payment-app/internal/config"
	"github.com/Bigsouley03/cat-payment-app/internal/handlers"
	"github.com/Bigsouley03/cat-payment-app/internal/model"
	"github.com/Bigsouley03/cat-payment-app/internal/render"
	"github.com/Bigsouley03/cat-payment-app/internal/repository"
	"github.com/Bigsouley03/cat-payment-app/internal/services"
	xhttp "github.com/Bigsouley03/cat-payment-app/pkg/http"
	"github.com/Bigsouley03/cat-payment-app/pkg/logger"
	"github.com/Bigsouley03/cat-payment-app/pkg/pg"
	"github.com/Bigsouley03/cat-payment-app/pkg/prom"
	"github.com/Bigsouley03/cat-payment-app/pkg/redis"
)

func main() {
	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	s := xhttp.CreateServer()
	s.Use(xhttp.CompressMiddleware(6))
	s.Use(xhttp.TimeoutMiddleware(time.Second * 5))
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(xhttp.RequestIDMiddleware)
	s.Use(xhttp.RecoverMiddleware)

	readConf := pg.Config{
		User:     config.Get().PostgresReadUser,
		Host:     config.Get().PostgresReadHost,
		Port:     config.Get().PostgresReadPort,
		Password: config.Get().PostgresReadPassword,
		Database: config.Get().PostgresReadDatabase,
	}
	writeConf := pg.Config{
		User:     config.Get().PostgresWriteUser,
		Host:     config.Get().PostgresWriteHost,
		Port:     config.Get().PostgresWritePort,
		Password: config.Get().PostgresWritePassword,
		Database: config.Get().PostgresWriteDatabase,
	}

	pgDebug := config.Get().AppEnv == "dev"
	db, err := pg.CreateReadWrite(readConf, writeConf, pgDebug)
	if err != nil {
		logger.Error("failed connecting to pg", "error", err)
		return
	}

	redisAdap, err := redis.NewRedisAdapter("default", config.Get().RedisUniversalKeyPrefix, &redis.Options{
		Addrs:      []string{config.Get().RedisAddr},
		ClientName: "default",
		DB:         config.Get().RedisDatabase,
		Username:   config.Get().RedisUsername,
		Password:   config.Get().RedisPassword,
	})
	if err != nil {
		logger.Error("failed connecting to redis", "error", err)
		return
	}

	if config.Get().PromNamespace != "" {
		if err := prom.Create(config.Get().AppName, config.Get().AppEnv, config.Get().PromNamespace); err != nil {
			logger.Error("failed creating metrics", "error", err)
		}
		if config.Get().MetricsAddr != "" {
			go prom.ListenAndServer(config.Get().MetricsAddr, config.Get().MetricsURI)
		}
	}

	catalog := model.NewCatalog(
		config.Get().PaymentTypes,
		config.Get().PaymentTypeLabels,
		config.Get().Classes,
		config.Get().PaymentReasons,
	)

	renderer, err := render.NewRenderer(
		catalog,
		config.Get().AppSchoolName,
		config.Get().CurrencyCode,
		config.Get().CurrencyLocale,
	)
	if err != nil {
		logger.Error("failed building renderer", "error", err)
		return
	}

	receiptRepo := repository.NewReceiptRepository(db)
	sessionRepo := repository.NewSessionRepository(redisAdap, config.Get().SessionKey)

	// services
	receiptService := services.NewReceiptService(receiptRepo, catalog)
	authService := services.NewAuthService(sessionRepo, config.Get().AdminUsername, config.Get().AdminPassword)
	healthService := services.NewHealthService()

	// handlers
	receiptHandler := handlers.NewReceiptHandler(receiptService, renderer)
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(healthService)

	g := s.Router.Group("/api")
	handlers.RegisterReceiptRoutes(g, receiptHandler)
	handlers.RegisterAuthRoutes(g, authHandler)
	handlers.RegisterHealthRoutes(g, healthHandler)

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := s.ListenAndServe(config.Get().HttpListenAddr); err != nil {
			logger.Error("error in running http-server", "error", err)
		}
	}()

	<-c
	s.Shutdown()
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error" + err.Error())
				return ""
			}
			return s[1]
		}
	}
	return ""
}
