package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MuzzammilShah/Minecraft-World/internal/api"
	"github.com/MuzzammilShah/Minecraft-World/internal/config"
	"github.com/MuzzammilShah/Minecraft-World/internal/eventbus"
	"github.com/MuzzammilShah/Minecraft-World/internal/logging"
	"github.com/MuzzammilShah/Minecraft-World/internal/observability"
	"github.com/MuzzammilShah/Minecraft-World/internal/scene"
	"github.com/MuzzammilShah/Minecraft-World/internal/world"
	_ "github.com/MuzzammilShah/Minecraft-World/internal/world/block/implementations"
)

func main() {
	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("sandbox"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	logging.Info("🎮 Запуск Voxel Sandbox...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load("")
	if err != nil {
		logging.Error("❌ Ошибка чтения конфигурации: %v", err)
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}

	restAddr := fmt.Sprintf(":%d", cfg.Server.GetRESTPort())
	logging.Info("📡 Конфигурация: мир %dx%d, сид=%d, REST API=%s",
		cfg.World.Width, cfg.World.Depth, cfg.World.Seed, restAddr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// === OBSERVABILITY ===
	telemetryShutdown, err := observability.InitTelemetry(ctx, "voxel-sandbox", cfg.World.Seed)
	if err != nil {
		logging.Warn("OpenTelemetry недоступен, продолжаем без трассировки: %v", err)
		telemetryShutdown = nil
	}

	// === ШИНА СОБЫТИЙ ===
	var jsBus *eventbus.JetStreamBus
	if cfg.EventBus.URL != "" {
		jsBus, err = eventbus.NewJetStreamBus(cfg.EventBus.URL, cfg.EventBus.Stream,
			time.Duration(cfg.EventBus.Retention)*time.Hour)
		if err != nil {
			logging.Warn("NATS недоступен, используем шину в памяти: %v", err)
		}
	}
	if jsBus != nil {
		eventbus.Init(jsBus)
		logging.Info("📨 Шина событий: NATS JetStream (%s)", cfg.EventBus.URL)
	} else {
		eventbus.Init(eventbus.NewMemoryBus())
		logging.Info("📨 Шина событий: in-memory")
	}

	// === МИР ===
	logging.Debug("Создание генератора ландшафта...")
	generator := world.NewTerrainGenerator(cfg.World.Seed, cfg.World.Scale, cfg.World.MaxHeight)
	table := world.DefaultBlockTypeTable(generator.MaxHeight)

	graph := scene.NewHeadlessGraph()
	wm := world.NewWorldManager(generator, table, graph,
		cfg.World.Width, cfg.World.Depth, cfg.World.BedrockY)

	logging.Debug("Генерация мира...")
	wm.Build(ctx)
	wm.Run(ctx)

	// === REST API ===
	restServer := api.NewRestServer(api.Config{
		Port:  restAddr,
		World: wm,
	})
	if err := restServer.Start(); err != nil {
		logging.Error("❌ Ошибка запуска REST API: %v", err)
		log.Fatalf("❌ Ошибка запуска REST API: %v", err)
	}

	logging.Info("✅ Все сервисы запущены")
	logging.Info("   🌍 Мир: %d блоков", wm.BlockCount())
	logging.Info("   🌐 REST API: http://localhost%s", restAddr)
	logging.Info("   ❤️  Health check: http://localhost%s/health", restAddr)

	// Канал для получения сигналов ОС
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logging.Info("📡 Получен сигнал %v, завершение работы...", sig)

	// === GRACEFUL SHUTDOWN ===
	wm.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := restServer.Stop(shutdownCtx); err != nil {
		logging.Error("❌ Ошибка остановки REST API: %v", err)
	}

	if jsBus != nil {
		jsBus.Close()
	}
	if telemetryShutdown != nil {
		if err := telemetryShutdown(shutdownCtx); err != nil {
			logging.Warn("Ошибка остановки телеметрии: %v", err)
		}
	}

	logging.Info("👋 Сервер успешно остановлен")
}
