package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=transaction_ms_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultAccountServiceURL = "http://localhost:8585"
const defaultChannelID = "GreyApp"
const defaultChannelKey = "GreyhoundKey001"
const defaultHTTPAddr = ":8080"
const defaultAccountServiceTimeout = 5 * time.Second

type Config struct {
	DatabaseDSN           string
	MigrationsDir         string
	AccountServiceURL     string
	AccountServiceTimeout time.Duration
	ChannelID             string
	ChannelKey            string
	HTTPAddr              string
}

func Load() (Config, error) {
	conn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if conn == "" {
		conn = defaultConnectionString
	}

	accountServiceURL := strings.TrimSpace(os.Getenv("ACCOUNT_MS_URL"))
	if accountServiceURL == "" {
		accountServiceURL = defaultAccountServiceURL
	}
	accountServiceURL = strings.TrimRight(accountServiceURL, "/")

	accountServiceTimeout := defaultAccountServiceTimeout
	if raw := strings.TrimSpace(os.Getenv("ACCOUNT_MS_TIMEOUT_SECONDS")); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			accountServiceTimeout = time.Duration(seconds) * time.Second
		}
	}

	channelID := strings.TrimSpace(os.Getenv("CHANNEL_ID"))
	if channelID == "" {
		channelID = defaultChannelID
	}

	channelKey := strings.TrimSpace(os.Getenv("CHANNEL_KEY"))
	if channelKey == "" {
		channelKey = defaultChannelKey
	}

	httpAddr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if httpAddr == "" {
		httpAddr = defaultHTTPAddr
	}

	migrationsDir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))
	if migrationsDir == "" {
		migrationsDir = filepath.Join("src", "migrations")
	}

	return Config{
		DatabaseDSN:           normalizeConnectionString(conn),
		MigrationsDir:         migrationsDir,
		AccountServiceURL:     accountServiceURL,
		AccountServiceTimeout: accountServiceTimeout,
		ChannelID:             channelID,
		ChannelKey:            channelKey,
		HTTPAddr:              httpAddr,
	}, nil
}

func normalizeConnectionString(raw string) string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
