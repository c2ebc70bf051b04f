package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Backup  BackupConfig  `mapstructure:"backup"`
	Sync    SyncConfig    `mapstructure:"sync"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// BackupConfig 带时间戳的 txt + html 备份
type BackupConfig struct {
	SourceDir  string `mapstructure:"source_dir"`
	DestDir    string `mapstructure:"dest_dir"`
	EscapeHTML bool   `mapstructure:"escape_html"`
}

// SyncConfig 同步到云盘目录：txt/ markdown/ html/ 三个子目录
type SyncConfig struct {
	SourceDir     string `mapstructure:"source_dir"`
	HTMLSourceDir string `mapstructure:"html_source_dir"`
	DestDir       string `mapstructure:"dest_dir"`
	ConvertHTML   bool   `mapstructure:"convert_html"`
}

type CatalogConfig struct {
	Input     string `mapstructure:"input"`
	OutputDir string `mapstructure:"output_dir"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("backup.escape_html", false)
	v.SetDefault("sync.convert_html", false)
	v.SetDefault("catalog.input", "models.json")
	v.SetDefault("catalog.output_dir", "output_files")
}

// Load 读取配置文件；path 为空时只使用默认值和环境变量
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// 环境变量覆盖，两种模式共用
	if dir := os.Getenv("ARCHIVER_SOURCE_DIR"); dir != "" {
		v.Set("backup.source_dir", dir)
		v.Set("sync.source_dir", dir)
	}
	if dir := os.Getenv("ARCHIVER_DEST_DIR"); dir != "" {
		v.Set("backup.dest_dir", dir)
		v.Set("sync.dest_dir", dir)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func (c BackupConfig) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("backup.source_dir is required")
	}
	if c.DestDir == "" {
		return fmt.Errorf("backup.dest_dir is required")
	}
	return nil
}

func (c SyncConfig) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("sync.source_dir is required")
	}
	return c.ValidateHTML()
}

// ValidateHTML 只搬运 HTML 导出时不需要 source_dir
func (c SyncConfig) ValidateHTML() error {
	if c.HTMLSourceDir == "" {
		return fmt.Errorf("sync.html_source_dir is required")
	}
	if c.DestDir == "" {
		return fmt.Errorf("sync.dest_dir is required")
	}
	return nil
}
