package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeStdio  = "stdio"
	ModeServer = "server"

	// Default values
	DefaultPort        = 8080
	DefaultHost        = "127.0.0.1"
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 50 * 1024 * 1024 // 50MB
	DefaultStartPage   = 0

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the DD1750 generator.
type Config struct {
	// Server configuration
	Mode string // "server" for the HTTP front end, "stdio" for MCP
	Host string
	Port int

	// Conversion configuration
	WorkDir     string // directory tool file access is confined to
	StartPage   int    // default 0-based BOM page to start extraction from
	MaxFileSize int64  // maximum input PDF size in bytes

	// Application configuration
	Version    string
	ServerName string
	LogLevel   string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		Mode:        ModeStdio, // stdio by default for MCP compatibility
		Host:        DefaultHost,
		Port:        DefaultPort,
		WorkDir:     currentDir,
		StartPage:   DefaultStartPage,
		MaxFileSize: DefaultMaxFileSize,
		Version:     "1.0.0",
		ServerName:  "dd1750-generator",
		LogLevel:    DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and environment variables and
// returns a validated configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if cfg.WorkDir != "" {
		if expanded, err := filepath.Abs(cfg.WorkDir); err == nil {
			cfg.WorkDir = expanded
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("DD1750")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("workdir", cfg.WorkDir)
	viper.SetDefault("startpage", cfg.StartPage)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Run mode: 'stdio' for MCP standard I/O, 'server' for the HTTP upload front end")
	pflag.String("host", cfg.Host, "Server host address (server mode only)")
	pflag.Int("port", cfg.Port, "Server port (server mode only)")
	pflag.String("workdir", cfg.WorkDir, "Directory containing BOM and template PDFs; file access is confined to it")
	pflag.Int("startpage", cfg.StartPage, "Default 0-based BOM page to start extraction from")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum input PDF size in bytes")
}

func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("host", pflag.Lookup("host"))
	_ = viper.BindPFlag("port", pflag.Lookup("port"))
	_ = viper.BindPFlag("workdir", pflag.Lookup("workdir"))
	_ = viper.BindPFlag("startpage", pflag.Lookup("startpage"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nDD1750 Generator - converts BOM PDFs into completed DD Form 1750 packing lists\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                        "+
			"# stdio mode (MCP), current directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --workdir=/path/to/pdfs                "+
			"# stdio mode with custom work directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=server --workdir=/path/to/pdfs  # HTTP upload front end\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=server --host=0.0.0.0 --port=8081\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  DD1750_MODE         Run mode\n")
		fmt.Fprintf(os.Stderr, "  DD1750_HOST         Server host\n")
		fmt.Fprintf(os.Stderr, "  DD1750_PORT         Server port\n")
		fmt.Fprintf(os.Stderr, "  DD1750_WORKDIR      Work directory\n")
		fmt.Fprintf(os.Stderr, "  DD1750_STARTPAGE    Default BOM start page\n")
		fmt.Fprintf(os.Stderr, "  DD1750_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  DD1750_MAXFILESIZE  Maximum file size\n")
	}
}

func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.WorkDir = viper.GetString("workdir")
	cfg.StartPage = viper.GetInt("startpage")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Mode != ModeStdio && c.Mode != ModeServer {
		return errors.New("mode must be either 'stdio' or 'server'")
	}

	if c.Mode == ModeServer && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}

	if c.WorkDir == "" {
		return errors.New("work directory cannot be empty")
	}
	if _, err := os.Stat(c.WorkDir); os.IsNotExist(err) {
		if err := os.MkdirAll(c.WorkDir, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create work directory %s: %w", c.WorkDir, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access work directory %s: %w", c.WorkDir, err)
	}

	if c.StartPage < 0 {
		return errors.New("start page must be non-negative")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// Address returns the server address as host:port.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsServerMode returns true when running the HTTP front end.
func (c *Config) IsServerMode() bool {
	return c.Mode == ModeServer
}

// IsStdioMode returns true when running as an MCP stdio server.
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Host: %s, Port: %d, WorkDir: %s, StartPage: %d, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.Host, c.Port, c.WorkDir, c.StartPage, c.LogLevel, c.MaxFileSize)
}
