package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"engsoc.net/eweek/internal/leaderboard"
)

type Config struct {
	APIBaseURL string

	ServerPort   int
	PollInterval time.Duration

	DBPath        string
	MigrationsDir string

	// festival window driving the dashboard countdown, RFC3339 or yyyy-mm-dd
	EventStart string
	EventEnd   string

	ScheduleStart string
	ScheduleDays  int

	Batches []string
}

func FromEnv() (Config, error) {
	var c Config

	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("API_BASE_URL")), "/")
	if c.APIBaseURL == "" {
		c.APIBaseURL = "http://localhost:3001"
	}

	port, err := intEnv("SERVER_PORT", 7071)
	if err != nil {
		return c, err
	}
	c.ServerPort = port

	pollSeconds, err := intEnv("POLL_SECONDS", 30)
	if err != nil {
		return c, err
	}
	c.PollInterval = time.Duration(pollSeconds) * time.Second

	c.DBPath = strings.TrimSpace(os.Getenv("DB_PATH"))
	if c.DBPath == "" {
		c.DBPath = "./data.sqlite3"
	}
	c.MigrationsDir = strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))
	if c.MigrationsDir == "" {
		c.MigrationsDir = "./migrations"
	}

	c.EventStart = strings.TrimSpace(os.Getenv("EVENT_START"))
	if c.EventStart == "" {
		c.EventStart = "2025-08-30T08:00:00Z"
	}
	c.EventEnd = strings.TrimSpace(os.Getenv("EVENT_END"))
	if c.EventEnd == "" {
		c.EventEnd = "2025-09-05T22:00:00Z"
	}

	c.ScheduleStart = strings.TrimSpace(os.Getenv("SCHEDULE_START"))
	if c.ScheduleStart == "" {
		c.ScheduleStart = "2025-08-30"
	}
	days, err := intEnv("SCHEDULE_DAYS", 7)
	if err != nil {
		return c, err
	}
	c.ScheduleDays = days

	c.Batches = parseBatches(os.Getenv("BATCHES"))

	return c, nil
}

func intEnv(name string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s is not a number: %q", name, raw)
	}
	return v, nil
}

func parseBatches(raw string) []string {
	parts := strings.Split(raw, ",")
	batches := []string{}
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		batches = append(batches, p)
	}
	if len(batches) == 0 {
		return leaderboard.DefaultBatches
	}
	return batches
}
