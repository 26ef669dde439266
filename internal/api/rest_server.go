package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/MuzzammilShah/Minecraft-World/internal/logging"
	"github.com/MuzzammilShah/Minecraft-World/internal/middleware"
	"github.com/MuzzammilShah/Minecraft-World/internal/world"
	"github.com/MuzzammilShah/Minecraft-World/internal/world/block"
)

// RestServer отдаёт наблюдательное REST API мира: статистику,
// карту высот и снапшот блоков. Только чтение, без персистентности.
type RestServer struct {
	router  *gin.Engine
	world   *world.WorldManager
	port    string
	metrics *ServerMetrics
	srv     *http.Server
	log     *logging.Logger
}

// Config содержит конфигурацию для REST сервера
type Config struct {
	Port  string              // порт для запуска сервера, например ":8088"
	World *world.WorldManager // менеджер мира
}

// NewRestServer создает новый REST API сервер
func NewRestServer(config Config) *RestServer {
	if config.Port == "" {
		config.Port = ":8088"
	}

	// Устанавливаем режим релиза для gin
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	apiLog := logging.GetLoggerManager().MustGetLogger("api")

	// === Observability middleware ===
	loggerMw := middleware.NewRequestLogger(apiLog)
	router.Use(loggerMw.Handler())

	router.Use(otelgin.Middleware("sandbox_api"))

	promMw := middleware.NewPrometheusMiddleware("sandbox_api")
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router)

	server := &RestServer{
		router:  router,
		world:   config.World,
		port:    config.Port,
		metrics: NewServerMetrics(),
		log:     apiLog,
	}

	server.setupRoutes()

	return server
}

// setupRoutes настраивает маршруты REST API
func (rs *RestServer) setupRoutes() {
	api := rs.router.Group("/api")
	{
		worldGroup := api.Group("/world")
		{
			worldGroup.GET("/stats", rs.handleStats)
			worldGroup.GET("/heightmap", rs.handleHeightmap)
			worldGroup.GET("/snapshot", rs.handleSnapshot)
		}
	}

	// Health check
	rs.router.GET("/health", rs.handleHealth)
}

// Start запускает HTTP-сервер в отдельной горутине
func (rs *RestServer) Start() error {
	rs.srv = &http.Server{
		Addr:    rs.port,
		Handler: rs.router,
	}

	go func() {
		if err := rs.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			rs.log.Error("Ошибка REST сервера: %v", err)
		}
	}()

	rs.log.Info("🌐 REST API запущен на %s", rs.port)
	return nil
}

// Stop останавливает HTTP-сервер
func (rs *RestServer) Stop(ctx context.Context) error {
	if rs.srv == nil {
		return nil
	}
	return rs.srv.Shutdown(ctx)
}

// handleHealth обрабатывает health check
func (rs *RestServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// handleStats возвращает статистику мира и процесса
func (rs *RestServer) handleStats(c *gin.Context) {
	memoryMB, _ := rs.metrics.GetMemoryUsage()
	cpuPercent, _ := rs.metrics.GetCPUUsage()

	selected := rs.world.SelectedMaterial()
	selectedName := fmt.Sprintf("%d", selected)
	if behavior, exists := block.Get(selected); exists {
		selectedName = behavior.Name()
	}

	c.JSON(http.StatusOK, gin.H{
		"blocks":            rs.world.BlockCount(),
		"selected_material": selectedName,
		"bedrock_y":         rs.world.BedrockY(),
		"uptime":            rs.metrics.GetUptime(),
		"memory_mb":         memoryMB,
		"cpu_percent":       cpuPercent,
	})
}

// heightmapCell одна ячейка карты высот в JSON-ответе
type heightmapCell struct {
	X      int `json:"x"`
	Z      int `json:"z"`
	Height int `json:"height"`
}

// handleHeightmap возвращает карту высот мира
func (rs *RestServer) handleHeightmap(c *gin.Context) {
	hm := rs.world.HeightMap()

	cells := make([]heightmapCell, 0, hm.Size())
	for pos, height := range hm {
		cells = append(cells, heightmapCell{X: pos.X, Z: pos.Z, Height: height})
	}

	c.JSON(http.StatusOK, gin.H{
		"size":  len(cells),
		"cells": cells,
	})
}

// snapshotBlock один блок в экспортируемом снапшоте
type snapshotBlock struct {
	X        int           `json:"x"`
	Y        int           `json:"y"`
	Z        int           `json:"z"`
	Material block.BlockID `json:"material"`
}

// handleSnapshot отдаёт gzip-сжатый JSON-дамп всех блоков мира
func (rs *RestServer) handleSnapshot(c *gin.Context) {
	blocks := rs.world.Snapshot()

	dump := make([]snapshotBlock, 0, len(blocks))
	for _, b := range blocks {
		dump = append(dump, snapshotBlock{X: b.Pos.X, Y: b.Pos.Y, Z: b.Pos.Z, Material: b.ID})
	}

	c.Header("Content-Type", "application/json")
	c.Header("Content-Encoding", "gzip")
	c.Status(http.StatusOK)

	gz := gzip.NewWriter(c.Writer)
	defer gz.Close()

	if err := json.NewEncoder(gz).Encode(dump); err != nil {
		rs.log.Error("Ошибка кодирования снапшота: %v", err)
	}
}

// Router возвращает gin.Engine для тестов
func (rs *RestServer) Router() *gin.Engine {
	return rs.router
}
