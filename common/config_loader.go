package common

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the settings of a query server process.
type ServerConfig struct {
	TCPAddr           string `yaml:"tcp_addr"`
	HTTPAddr          string `yaml:"http_addr"`
	DataDir           string `yaml:"data_dir"`
	JoinStrategy      string `yaml:"join_strategy"`
	LogLevel          string `yaml:"log_level"`
	MaxQueryThreadNum uint64 `yaml:"max_query_threads"`
	DeadlockDetection bool   `yaml:"deadlock_detection"`
}

var defaultConfigPaths = []string{
	"queryrunner.yaml",
	"queryrunner.yml",
	"configs/queryrunner.yaml",
	"configs/queryrunner.yml",
}

func NewDefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		TCPAddr:           DefaultTCPAddr,
		HTTPAddr:          DefaultHTTPAddr,
		JoinStrategy:      DefaultJoinStrategy,
		LogLevel:          "info",
		MaxQueryThreadNum: MaxQueryThreadNum,
	}
}

// LoadServerConfig reads configPath, or the first existing default location
// when configPath is empty. Settings missing from the file keep their defaults,
// and no file at all yields the defaults.
func LoadServerConfig(configPath string) (*ServerConfig, error) {
	conf := NewDefaultServerConfig()

	if configPath == "" {
		configPath = findDefaultConfig()
		if configPath == "" {
			return conf, nil
		}
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("specified config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func findDefaultConfig() string {
	for _, path := range defaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func (c *ServerConfig) Validate() error {
	switch c.JoinStrategy {
	case "hash", "merge":
	default:
		return fmt.Errorf("invalid join_strategy %q (expected hash or merge)", c.JoinStrategy)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.MaxQueryThreadNum == 0 {
		return fmt.Errorf("max_query_threads must be positive")
	}
	return nil
}

// Apply copies the process wide settings into the package level variables.
func (c *ServerConfig) Apply() {
	if lvl, err := ParseLogLevel(c.LogLevel); err == nil {
		LogLevelSetting = lvl
	}
	EnableDeadlockDetection = c.DeadlockDetection
	DefaultJoinStrategy = c.JoinStrategy
	MaxQueryThreadNum = c.MaxQueryThreadNum
}
