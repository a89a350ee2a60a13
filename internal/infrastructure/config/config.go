package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/xiebiao/bookshelf/pkg/logger"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，YAML文件可选（缺省时使用默认值），环境变量覆盖
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Inventory InventoryConfig `mapstructure:"inventory"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug | release | test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr 监听地址
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // text | json
	Output string `mapstructure:"output"` // stdout | stderr | /path/to/file
}

// Options 转换为logger.Options
func (l LogConfig) Options() logger.Options {
	return logger.Options{Level: l.Level, Format: l.Format, Output: l.Output}
}

// ID生成策略
const (
	IDStrategySequence = "sequence" // 自增序号："1"、"2"...
	IDStrategyUUID     = "uuid"     // UUIDv7
)

type InventoryConfig struct {
	IDStrategy string `mapstructure:"id_strategy"`
}

type TracingConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	ServiceName  string `mapstructure:"service_name"`
	CollectorURL string `mapstructure:"collector_url"` // OTLP gRPC地址，如localhost:4317
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type CORSConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	AllowOrigins []string      `mapstructure:"allow_origins"`
	AllowMethods []string      `mapstructure:"allow_methods"`
	AllowHeaders []string      `mapstructure:"allow_headers"`
	MaxAge       time.Duration `mapstructure:"max_age"`
}

// Load 加载配置
// 支持：
// 1. path非空时读取指定文件，文件不存在直接报错
// 2. path为空时依次查找./config/config.yaml、./config.yaml，都不存在则使用默认值
// 3. 环境变量覆盖（如BOOKSHELF_SERVER_PORT → server.port）
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	// 环境变量绑定（server.port → BOOKSHELF_SERVER_PORT）
	v.SetEnvPrefix("BOOKSHELF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults 默认值
// AutomaticEnv只对viper已知的key生效，所以每个key都要有默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("inventory.id_strategy", IDStrategySequence)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "bookshelf")
	v.SetDefault("tracing.collector_url", "localhost:4317")

	v.SetDefault("metrics.enabled", true)

	v.SetDefault("cors.enabled", false)
	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("cors.allow_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allow_headers", []string{"Origin", "Content-Type", "Accept", "X-Request-ID"})
	v.SetDefault("cors.max_age", 12*time.Hour)
}

// validate 配置校验
func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("无效的服务端口: %d", cfg.Server.Port)
	}

	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("无效的运行模式: %s", cfg.Server.Mode)
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}

	switch cfg.Inventory.IDStrategy {
	case IDStrategySequence, IDStrategyUUID:
	default:
		return fmt.Errorf("未知的ID生成策略: %s", cfg.Inventory.IDStrategy)
	}

	if cfg.Tracing.Enabled && cfg.Tracing.CollectorURL == "" {
		return fmt.Errorf("启用链路追踪时必须配置collector_url")
	}

	return nil
}
