package config // package config loads application configuration from environment variables

import (
    "log"     // log reports a malformed .env file without halting startup
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types

    "github.com/joho/godotenv" // godotenv seeds the environment from a local .env file
)

// DefaultPort is used when PORT is unset or cannot be parsed.
const DefaultPort = 5000

// Config holds all runtime configuration values.  It is read once at
// startup and handed to the router, so handlers never consult the
// environment directly.
type Config struct {
    Env      string // application environment (e.g. "dev", "prod")
    Port     int    // HTTP port to listen on
    DBURI    string // database connection string probed by /database (may be empty)
    RedisURL string // redis:// URL probed by /redis (optional)
    AMQPURL  string // amqp:// URL probed by /rabbitmq (optional)
}

// Load reads configuration values from the environment and returns a
// Config.  A .env file in the working directory, if present, is loaded
// first; variables already set in the process environment win.
func Load() Config {
    if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
        log.Printf("config: ignoring .env: %v", err)
    }
    return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() Config {
    amqpURL := os.Getenv("RABBITMQ_URL")
    if amqpURL == "" {
        amqpURL = os.Getenv("AMQP_URL")
    }
    return Config{
        Env:      envStr("APP_ENV", "dev"),
        Port:     envPort("PORT", DefaultPort),
        DBURI:    os.Getenv("DB_URI"),
        RedisURL: os.Getenv("REDIS_URL"),
        AMQPURL:  amqpURL,
    }
}

// Addr returns the listen address for the configured port on all interfaces.
func (c Config) Addr() string {
    return ":" + strconv.Itoa(c.Port)
}

func envStr(k, d string) string { if v := os.Getenv(k); v != "" { return v }; return d }

// envPort is like envInt but also rejects values outside the TCP port range.
func envPort(k string, d int) int {
    n := envInt(k, d)
    if n < 1 || n > 65535 {
        return d
    }
    return n
}

func envInt(k string, d int) int {
    v := os.Getenv(k); if v == "" { return d }
    if n, err := strconv.Atoi(v); err == nil { return n }
    return d
}
