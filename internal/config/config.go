package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"routerdash/internal/models"
)

// Device holds the connection settings of one managed router.
type Device struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	UseTLS   bool   `json:"use_tls"`
}

// Config holds all application configuration.
type Config struct {
	Addr            string
	DevicesPath     string
	Devices         []Device
	DBPath          string
	CacheTTL        time.Duration
	CollectInterval time.Duration
	TopTalkers      int
	LogLevel        string
	AuthSecret      string
	TokenExpiry     time.Duration
	AllowedOrigins  []string
}

// Load parses command line flags and environment variables, then reads the
// device list. Flags take precedence over environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Addr = getEnv("ROUTERDASH_ADDR", ":8080")
	cfg.DevicesPath = getEnv("ROUTERDASH_DEVICES", "devices.json")
	cfg.DBPath = getEnv("ROUTERDASH_DB", "routerdash.db")
	cfg.CacheTTL = getEnvDuration("ROUTERDASH_CACHE_TTL", 60*time.Second)
	cfg.CollectInterval = getEnvDuration("ROUTERDASH_COLLECT_INTERVAL", 60*time.Second)
	cfg.TopTalkers = getEnvInt("ROUTERDASH_TOP_TALKERS", 20)
	cfg.LogLevel = getEnv("ROUTERDASH_LOG_LEVEL", "info")
	cfg.AuthSecret = getEnv("ROUTERDASH_AUTH_SECRET", "")
	cfg.TokenExpiry = getEnvDuration("ROUTERDASH_TOKEN_EXPIRY", 24*time.Hour)
	origins := getEnv("ROUTERDASH_ALLOWED_ORIGINS", "")

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP server address")
	flag.StringVar(&cfg.DevicesPath, "devices", cfg.DevicesPath, "Path to the device list (JSON)")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite history database")
	flag.DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "Freshness window for cached summaries")
	flag.DurationVar(&cfg.CollectInterval, "collect-interval", cfg.CollectInterval, "History collection interval")
	flag.IntVar(&cfg.TopTalkers, "top-talkers", cfg.TopTalkers, "Number of addresses in the traffic ranking")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace|debug|info|warn|error)")
	flag.StringVar(&origins, "allowed-origins", origins, "Comma separated CORS origins")
	flag.Parse()

	cfg.AllowedOrigins = splitList(origins)

	devices, err := loadDevices(cfg.DevicesPath)
	if err != nil {
		return nil, err
	}
	cfg.Devices = devices

	return cfg, nil
}

// Device returns the configured device with the given ID.
func (c *Config) Device(id int) (Device, bool) {
	for _, d := range c.Devices {
		if d.ID == id {
			return d, true
		}
	}
	return Device{}, false
}

// DeviceInfos returns the credential-free view of the device list.
func (c *Config) DeviceInfos() []models.DeviceInfo {
	infos := make([]models.DeviceInfo, 0, len(c.Devices))
	for _, d := range c.Devices {
		infos = append(infos, models.DeviceInfo{
			ID:     d.ID,
			Name:   d.Name,
			Host:   d.Host,
			Port:   d.Port,
			UseTLS: d.UseTLS,
		})
	}
	return infos
}

func loadDevices(path string) ([]Device, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read device list: %w", err)
	}

	var devices []Device
	if err := json.Unmarshal(data, &devices); err != nil {
		return nil, fmt.Errorf("parse device list %s: %w", path, err)
	}

	seen := make(map[int]bool)
	for i := range devices {
		d := &devices[i]
		if d.Host == "" {
			return nil, fmt.Errorf("device %d: missing host", d.ID)
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("duplicate device id %d", d.ID)
		}
		seen[d.ID] = true
		if d.Port == 0 {
			if d.UseTLS {
				d.Port = 8729
			} else {
				d.Port = 8728
			}
		}
		if d.Name == "" {
			d.Name = d.Host
		}
	}
	return devices, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
