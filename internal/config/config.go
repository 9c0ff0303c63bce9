package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Pricing PricingConfig `mapstructure:"pricing"`
	Log     LogConfig     `mapstructure:"log"`
}

// PricingConfig 全局计价默认值
type PricingConfig struct {
	DefaultSellingMarkup  float64 `mapstructure:"default_selling_markup"`   // 无规则时：仕入×(1+markup)
	ListPriceFallbackRate float64 `mapstructure:"list_price_fallback_rate"` // 仕入缺失时：定価×rate
	BringInFeeRate        float64 `mapstructure:"bring_in_fee_rate"`        // 持ち込み费：定価×rate
	DefaultBringInMarkup  float64 `mapstructure:"default_bring_in_markup"`  // 持ち込み费兜底：仕入×(1+markup)
	TaxRate               float64 `mapstructure:"tax_rate"`
	PriceRoundUnit        float64 `mapstructure:"price_round_unit"` // 单价向上取整单位（円）
	FreeShippingThreshold float64 `mapstructure:"free_shipping_threshold"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultPricing 生产环境使用的计价默认值
func DefaultPricing() PricingConfig {
	return PricingConfig{
		DefaultSellingMarkup:  0.3,
		ListPriceFallbackRate: 0.52,
		BringInFeeRate:        0.3,
		DefaultBringInMarkup:  0.3,
		TaxRate:               0.10,
		PriceRoundUnit:        10,
		FreeShippingThreshold: 10000,
	}
}

func Load() (*Config, error) {
	v := viper.New()

	// 设置配置文件
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// 环境变量覆盖
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// 配置文件不存在，使用默认值+环境变量
	}

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultPricing()
	v.SetDefault("pricing.default_selling_markup", def.DefaultSellingMarkup)
	v.SetDefault("pricing.list_price_fallback_rate", def.ListPriceFallbackRate)
	v.SetDefault("pricing.bring_in_fee_rate", def.BringInFeeRate)
	v.SetDefault("pricing.default_bring_in_markup", def.DefaultBringInMarkup)
	v.SetDefault("pricing.tax_rate", def.TaxRate)
	v.SetDefault("pricing.price_round_unit", def.PriceRoundUnit)
	v.SetDefault("pricing.free_shipping_threshold", def.FreeShippingThreshold)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

func bindEnvVariables(v *viper.Viper) {
	// Pricing
	v.BindEnv("pricing.default_selling_markup", "PRICING_DEFAULT_SELLING_MARKUP")
	v.BindEnv("pricing.list_price_fallback_rate", "PRICING_LIST_PRICE_FALLBACK_RATE")
	v.BindEnv("pricing.bring_in_fee_rate", "PRICING_BRING_IN_FEE_RATE")
	v.BindEnv("pricing.default_bring_in_markup", "PRICING_DEFAULT_BRING_IN_MARKUP")
	v.BindEnv("pricing.tax_rate", "PRICING_TAX_RATE")
	v.BindEnv("pricing.free_shipping_threshold", "PRICING_FREE_SHIPPING_THRESHOLD")

	// Log
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
}

// GetEnvOrDefault 获取环境变量，如果不存在则返回默认值
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
