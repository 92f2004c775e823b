package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig       `mapstructure:"app"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Session     SessionConfig   `mapstructure:"session"`
	Suggest     SuggestConfig   `mapstructure:"suggest"`
	AI          AIConfig        `mapstructure:"ai"`
	Extract     ExtractConfig   `mapstructure:"extract"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	DedupWindow time.Duration   `mapstructure:"dedup_window"`
	LogLevel    string          `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// DatabaseConfig 食譜資料庫設定
// DSN 留空表示未設定資料庫，建議引擎會直接走靜態後備表
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // postgres 或 sqlite
	DSN    string `mapstructure:"dsn"`
}

// Configured 是否已設定資料庫
func (c DatabaseConfig) Configured() bool {
	return c.DSN != ""
}

// SessionConfig 會話狀態設定
type SessionConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl"`
	CookieName    string        `mapstructure:"cookie_name"`
}

// SuggestConfig 建議引擎設定
type SuggestConfig struct {
	TopN      int     `mapstructure:"top_n"`
	EaseBonus float64 `mapstructure:"ease_bonus"`
}

// AIConfig AI 靈感設定
type AIConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ExtractConfig 文章擷取設定
type ExtractConfig struct {
	Timeout  time.Duration `mapstructure:"timeout"`
	MaxChars int           `mapstructure:"max_chars"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件
	if err := godotenv.Load(); err != nil {
		return nil, err
	}

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("database.dsn", "DATABASE_URL")
	viper.BindEnv("database.driver", "DATABASE_DRIVER")
	viper.BindEnv("session.enabled", "SESSION_ENABLED")
	viper.BindEnv("session.redis_addr", "REDIS_ADDR")
	viper.BindEnv("session.redis_password", "REDIS_PASSWORD")
	viper.BindEnv("ai.enabled", "ENABLE_AI")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("dedup_window", "DEDUP_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// 讀取設定檔
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 添加調試日誌（logger 尚未初始化，改用 fmt.Println）
	fmt.Println("Loading configuration", "database_driver:", viper.GetString("database.driver"), "database_dsn:", maskDSN(viper.GetString("database.dsn")))

	// 解析設定
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// maskDSN 遮罩連線字串，只顯示前後各 4 個字符
func maskDSN(dsn string) string {
	if dsn == "" {
		return "(not configured)"
	}
	if len(dsn) <= 8 {
		return "****"
	}
	return dsn[:4] + "..." + dsn[len(dsn)-4:]
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "leftover-chef")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// 資料庫設定（預設未設定，走後備規則表）
	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("database.dsn", "")

	// 會話設定
	viper.SetDefault("session.enabled", true)
	viper.SetDefault("session.redis_addr", "")
	viper.SetDefault("session.redis_password", "")
	viper.SetDefault("session.redis_db", 0)
	viper.SetDefault("session.ttl", "72h")
	viper.SetDefault("session.cookie_name", "lc_session")

	// 建議引擎設定
	viper.SetDefault("suggest.top_n", 5)
	viper.SetDefault("suggest.ease_bonus", 0.12)

	// AI 靈感設定
	viper.SetDefault("ai.enabled", false)

	// 文章擷取設定
	viper.SetDefault("extract.timeout", "15s")
	viper.SetDefault("extract.max_chars", 5000)

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// 去重時間窗預設
	viper.SetDefault("dedup_window", "1s")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	// 驗證資料庫設定
	if config.Database.Configured() {
		switch config.Database.Driver {
		case "postgres", "sqlite":
		default:
			return fmt.Errorf("unsupported database driver: %s", config.Database.Driver)
		}
	}

	// 驗證建議引擎設定
	if config.Suggest.TopN <= 0 {
		return fmt.Errorf("invalid suggest top_n")
	}
	if config.Suggest.EaseBonus < 0 {
		return fmt.Errorf("invalid suggest ease_bonus")
	}

	// 驗證會話設定
	if config.Session.Enabled {
		if config.Session.TTL <= 0 {
			return fmt.Errorf("invalid session ttl")
		}
		if config.Session.CookieName == "" {
			return fmt.Errorf("session cookie name is required")
		}
	}

	// 驗證擷取設定
	if config.Extract.MaxChars <= 0 {
		return fmt.Errorf("invalid extract max_chars")
	}

	return nil
}
