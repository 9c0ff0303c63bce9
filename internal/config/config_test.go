package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := DefaultPricing()
	if cfg.Pricing != def {
		t.Errorf("expected default pricing %+v, got %+v", def, cfg.Pricing)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Errorf("unexpected log defaults: %+v", cfg.Log)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PRICING_TAX_RATE", "0.08")
	t.Setenv("PRICING_FREE_SHIPPING_THRESHOLD", "15000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Pricing.TaxRate != 0.08 {
		t.Errorf("expected tax rate 0.08, got %v", cfg.Pricing.TaxRate)
	}
	if cfg.Pricing.FreeShippingThreshold != 15000 {
		t.Errorf("expected threshold 15000, got %v", cfg.Pricing.FreeShippingThreshold)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Log.Level)
	}
	// 未覆盖的字段保持默认
	if cfg.Pricing.DefaultSellingMarkup != 0.3 {
		t.Errorf("expected default markup 0.3, got %v", cfg.Pricing.DefaultSellingMarkup)
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("PRINTSHOP_TEST_KEY", "set")
	if got := GetEnvOrDefault("PRINTSHOP_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("expected set, got %q", got)
	}
	if got := GetEnvOrDefault("PRINTSHOP_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}
