package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/yaml.v3"

	"mealplanner/internal/api"
	"mealplanner/internal/cook"
	"mealplanner/internal/database"
	"mealplanner/internal/dishes"
	"mealplanner/internal/history"
	"mealplanner/internal/inventory"
	"mealplanner/internal/plans"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	dbPath      = flag.String("db", "", "Path to the SQLite database (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

// Config represents the application configuration
type Config struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	DBPath      string `yaml:"db_path"`
}

func main() {
	flag.Parse()

	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		config.Port = *port
	}
	if *metricsPort != 0 {
		config.MetricsPort = *metricsPort
	}
	if *dbPath != "" {
		config.DBPath = *dbPath
	}

	if err := database.InitDB(config.DBPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	db := database.GetDB()
	store := inventory.NewStore(inventory.NewGormRepository(db))
	catalog := dishes.NewService(dishes.NewGormRepository(db))
	mealLog := history.NewLog(history.NewGormRepository(db))
	planStore := plans.NewService(plans.NewGormRepository(db))
	engine := cook.NewEngine(store, catalog, mealLog)

	server := api.NewServer(store, catalog, mealLog, planStore, engine)

	go startMetricsServer(config.MetricsPort)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: server.Router(),
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on port %d", config.Port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

// loadConfig reads the YAML configuration, falling back to defaults when
// the file does not exist.
func loadConfig(path string) (*Config, error) {
	config := &Config{
		Port:        8080,
		MetricsPort: 9090,
		DBPath:      "data/mealplanner.db",
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

func startMetricsServer(port int) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
