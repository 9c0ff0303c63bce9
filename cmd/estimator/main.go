package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bitfantasy/printshop/internal/config"
	"github.com/bitfantasy/printshop/internal/pricing/entity"
	"github.com/bitfantasy/printshop/internal/pricing/repository"
	"github.com/bitfantasy/printshop/internal/pricing/service"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	snapshotPath := flag.String("snapshot", "snapshot.json", "参考数据快照JSON路径")
	orderPath := flag.String("order", "order.json", "报价单JSON路径")
	dtfUnit := flag.Float64("dtf-unit", 0, "DTF单件印刷费（外部协作方价格）")
	flag.Parse()

	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting estimator",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	snap, err := loadSnapshot(*snapshotPath)
	if err != nil {
		zapLogger.Fatal("Failed to load snapshot", zap.Error(err))
	}
	order, err := loadOrder(*orderPath)
	if err != nil {
		zapLogger.Fatal("Failed to load order", zap.Error(err))
	}
	normalizeOrder(order)

	repos := repository.NewRepositories(snap)

	var dtf service.DTFCalculator
	if *dtfUnit > 0 {
		unit := *dtfUnit
		dtf = service.DTFFunc(func(_ entity.PrintDesign, quantity int) float64 {
			return unit * float64(quantity)
		})
	}
	services := service.NewServices(repos, cfg.Pricing, dtf)

	details, groups, err := services.Estimate.Estimate(order)
	if err != nil {
		zapLogger.Fatal("Estimate rejected", zap.Error(err))
	}

	zapLogger.Info("Estimate completed",
		zap.Int("groups", len(groups)),
		zap.Int("total_quantity", details.TotalQuantity),
		zap.Float64("subtotal", details.Subtotal),
		zap.Float64("total", details.Total),
	)

	output := struct {
		CostDetails *entity.CostDetails      `json:"cost_details"`
		Groups      []entity.ProcessingGroup `json:"groups"`
	}{details, groups}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		zapLogger.Fatal("Failed to encode result", zap.Error(err))
	}
}

func loadSnapshot(path string) (*repository.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	var snap repository.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return &snap, nil
}

func loadOrder(path string) (*entity.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read order file: %w", err)
	}
	var order entity.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to parse order: %w", err)
	}
	return &order, nil
}

// normalizeOrder 给缺失ID的加工组/自定义行补发ID。
// ID补发发生在引擎边界之外，保证引擎本身可重入。
func normalizeOrder(order *entity.Order) {
	for gi := range order.Groups {
		group := &order.Groups[gi]
		if group.ID == "" {
			group.ID = uuid.New().String()
		}
		for i := range group.CustomItems {
			if group.CustomItems[i].ID == "" {
				group.CustomItems[i].ID = uuid.New().String()
			}
		}
		for i := range group.SampleItems {
			if group.SampleItems[i].ID == "" {
				group.SampleItems[i].ID = uuid.New().String()
			}
		}
	}
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}
