package main

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the environment-driven runtime configuration. Every field maps
// to an upper-snake environment variable (PORT, DATABASE_URL, MEILI_URL,
// and so on); unset variables fall back to the defaults below.
type Config struct {
	Env  string
	Port string

	DatabaseURL string

	MeiliURL    string
	MeiliAPIKey string

	ScrapeOnStart  bool
	ScrapeHour     int
	ScrapeMinute   int
	ScrapeHeadless bool
	ScrapeTimeout  time.Duration

	ListLimit int
}

// LoadConfig reads configuration from the environment.
func LoadConfig() *Config {
	v := viper.New()

	v.SetDefault("app_env", "development")
	v.SetDefault("port", "4000")
	v.SetDefault("database_url", "")
	v.SetDefault("meili_url", "")
	v.SetDefault("meili_api_key", "")
	v.SetDefault("scrape_on_start", true)
	v.SetDefault("scrape_hour", 2)
	v.SetDefault("scrape_minute", 0)
	v.SetDefault("scrape_headless", true)
	v.SetDefault("scrape_timeout", "20m")
	v.SetDefault("list_limit", 5000)

	v.AutomaticEnv()

	return &Config{
		Env:            v.GetString("app_env"),
		Port:           v.GetString("port"),
		DatabaseURL:    v.GetString("database_url"),
		MeiliURL:       v.GetString("meili_url"),
		MeiliAPIKey:    v.GetString("meili_api_key"),
		ScrapeOnStart:  v.GetBool("scrape_on_start"),
		ScrapeHour:     v.GetInt("scrape_hour"),
		ScrapeMinute:   v.GetInt("scrape_minute"),
		ScrapeHeadless: v.GetBool("scrape_headless"),
		ScrapeTimeout:  v.GetDuration("scrape_timeout"),
		ListLimit:      v.GetInt("list_limit"),
	}
}
