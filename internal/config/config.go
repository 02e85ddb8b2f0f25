package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tibungco/portal/internal/hotline"
)

// Config centraliza a configuração carregada do ambiente.
// Tudo é resolvido uma única vez no boot; nenhum valor é
// inferido em tempo de requisição.
type Config struct {
	Port          int
	DBDSN         string
	RedisURL      string
	AllowOrigins  []string
	AdminEmail    string
	AdminPassword string
	StatsCacheTTL time.Duration
	Hotlines      []hotline.Hotline
}

// Load carrega variáveis de ambiente e aplica defaults seguros.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	portStr := getEnv("PORT", "5000")
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 {
		return nil, errors.New("PORT inválida")
	}
	cfg.Port = port

	cfg.DBDSN = getEnv("DB_DSN", "")
	if cfg.DBDSN == "" {
		return nil, errors.New("DB_DSN obrigatório")
	}

	cfg.RedisURL = getEnv("REDIS_URL", "")
	if cfg.RedisURL == "" {
		return nil, errors.New("REDIS_URL obrigatório")
	}

	cfg.AdminEmail = strings.ToLower(strings.TrimSpace(getEnv("ADMIN_EMAIL", "")))
	cfg.AdminPassword = strings.TrimSpace(getEnv("ADMIN_PASSWORD", ""))
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil, errors.New("ADMIN_EMAIL e ADMIN_PASSWORD obrigatórios")
	}

	statsTTL, err := parseDurationEnv("STATS_CACHE_TTL", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.StatsCacheTTL = statsTTL

	allowOrigins := strings.Split(getEnv("ALLOW_ORIGINS", ""), ",")
	cfg.AllowOrigins = nil
	for _, origin := range allowOrigins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}

	hotlines, err := hotline.Parse(getEnv("HOTLINES", ""))
	if err != nil {
		return nil, err
	}
	if len(hotlines) == 0 {
		hotlines = hotline.Defaults()
	}
	cfg.Hotlines = hotlines

	return cfg, nil
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	dur, err := time.ParseDuration(val)
	if err != nil {
		return 0, errors.New(key + " inválido")
	}
	return dur, nil
}
