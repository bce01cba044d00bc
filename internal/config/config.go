package config

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerCfg struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type UpstreamCfg struct {
	BaseURL         string  `mapstructure:"baseUrl"`
	TimeoutSec      int     `mapstructure:"timeoutSec"`
	ReversePayments bool    `mapstructure:"reversePayments"`
	HealthStrategy  string  `mapstructure:"healthStrategy"`
	HealthThreshold float64 `mapstructure:"healthThreshold"`
}

type DashboardCfg struct {
	Timezone        string  `mapstructure:"timezone"`
	FeeRate         float64 `mapstructure:"feeRate"`
	DefaultCurrency string  `mapstructure:"defaultCurrency"`
	RecentLimit     int     `mapstructure:"recentLimit"`
	PreviewLimit    int     `mapstructure:"previewLimit"`
}

type LogCfg struct {
	Dir     string `mapstructure:"dir"`
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

// NotifyCfg enables Telegram alerts on upstream health transitions; empty disables them.
type NotifyCfg struct {
	TelegramToken  string `mapstructure:"telegramToken"`
	TelegramChatID string `mapstructure:"telegramChatId"`
}

type SnowflakeCfg struct {
	NodeID int64 `mapstructure:"nodeId"`
}

type Root struct {
	Server    ServerCfg    `mapstructure:"server"`
	Upstream  UpstreamCfg  `mapstructure:"upstream"`
	Dashboard DashboardCfg `mapstructure:"dashboard"`
	Log       LogCfg       `mapstructure:"log"`
	Notify    NotifyCfg    `mapstructure:"notify"`
	Snowflake SnowflakeCfg `mapstructure:"snowflake"`
}

const DefaultBaseURL = "https://recruit.paysbypays.com/api/v1"

var C Root

func Init() {
	env := flag.String("env", "dev", "config env: dev|prod")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := Load("config/config." + *env + ".yaml")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	C = cfg
}

// Load reads a yaml config file, applies PAYDASH_* environment overrides and fills defaults.
func Load(path string) (Root, error) {
	var cfg Root

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("PAYDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("upstream.reversePayments", true)
	v.SetDefault("log.console", true)
	v.SetDefault("notify.telegramToken", "")
	v.SetDefault("notify.telegramChatId", "")

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	return cfg, nil
}

// sane defaults
func applyDefaults(cfg *Root) {
	if strings.TrimSpace(cfg.Server.Port) == "" {
		cfg.Server.Port = "8080"
	}
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		cfg.Server.Mode = "release"
	}
	if strings.TrimSpace(cfg.Upstream.BaseURL) == "" {
		cfg.Upstream.BaseURL = DefaultBaseURL
	}
	cfg.Upstream.BaseURL = strings.TrimRight(cfg.Upstream.BaseURL, "/")
	if cfg.Upstream.TimeoutSec <= 0 {
		cfg.Upstream.TimeoutSec = 10
	}
	if strings.TrimSpace(cfg.Upstream.HealthStrategy) == "" {
		cfg.Upstream.HealthStrategy = "ewma"
	}
	if cfg.Upstream.HealthThreshold <= 0 {
		cfg.Upstream.HealthThreshold = 60
	}
	if strings.TrimSpace(cfg.Dashboard.Timezone) == "" {
		cfg.Dashboard.Timezone = "Asia/Seoul"
	}
	if cfg.Dashboard.FeeRate <= 0 {
		cfg.Dashboard.FeeRate = 0.025
	}
	if strings.TrimSpace(cfg.Dashboard.DefaultCurrency) == "" {
		cfg.Dashboard.DefaultCurrency = "KRW"
	}
	if cfg.Dashboard.RecentLimit <= 0 {
		cfg.Dashboard.RecentLimit = 5
	}
	if cfg.Dashboard.PreviewLimit <= 0 {
		cfg.Dashboard.PreviewLimit = 5
	}
	if strings.TrimSpace(cfg.Log.Dir) == "" {
		cfg.Log.Dir = "./logs"
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Snowflake.NodeID < 0 || cfg.Snowflake.NodeID > 1023 {
		cfg.Snowflake.NodeID = 1
	}
}
