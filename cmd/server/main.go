package main

import (
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dmitryshur/agar-io-back/internal/engine"
	"github.com/dmitryshur/agar-io-back/internal/server"
	"github.com/dmitryshur/agar-io-back/internal/version"
	"github.com/dmitryshur/agar-io-back/pkg/logger"
)

func init() {
	// .env опционален: в докере переменные приходят из окружения
	_ = godotenv.Load()
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.Parse()

	logger.Log.Info("Starting arena server...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random seed: %d", cfg.Seed)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5555"
	}

	// 2. Сборка ядра: три владельца состояния создаются здесь и
	// передаются явно - никаких глобальных синглтонов.
	// Сиды генераторов разводим, чтобы точки и игроки не совпадали.
	dots := engine.NewDotField(cfg, rand.New(rand.NewSource(cfg.Seed)))
	players := engine.NewPlayerRegistry(cfg, rand.New(rand.NewSource(cfg.Seed+1)))
	world := engine.NewWorld(cfg, players, dots)

	dots.Start()
	players.Start()
	world.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(world, cfg, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	world.Stop()
	players.Stop()
	dots.Stop()

	logger.Log.Info("Done.")
}
