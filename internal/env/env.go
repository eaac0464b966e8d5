//This project is the dining API for Hoagie Meal. Access to campus dining locations, events and menus as well as helper endpoints to integrate with our apps.
//API Copyright (C) 2025 Hoagie Club
//This program is free software: you can redistribute it and/or modify
//it under the terms of the GNU General Public License as published by
//the Free Software Foundation, either version 3 of the License, or
//(at your option) any later version.
//
//This program is distributed in the hope that it will be useful,
//but WITHOUT ANY WARRANTY; without even the implied warranty of
//MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//GNU General Public License for more details.
//
//You should have received a copy of the GNU General Public License
//along with this program.  If not, see <https://www.gnu.org/licenses/>.
package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Environment variable keys
const (
	// Server
	EnvPort   = "PORT"
	EnvAppEnv = "APP_ENV"

	// Upstream dining API
	EnvUpstreamBaseURL = "UPSTREAM_BASE_URL"
	EnvUpstreamTimeout = "UPSTREAM_TIMEOUT"
	EnvConsumerKey     = "CONSUMER_KEY"
	EnvConsumerSecret  = "CONSUMER_SECRET"
	EnvTokenURL        = "TOKEN_URL"

	// Meal schedule
	EnvCampusTimezone = "CAMPUS_TIMEZONE"

	// Response cache
	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvRedisDB       = "REDIS_DB"
)

const (
	DefaultPort            = "9237"
	DefaultUpstreamBaseURL = "http://localhost:8000"
	DefaultUpstreamTimeout = 10 * time.Second
	DefaultCampusTimezone  = "America/New_York"

	production = "production"
)

type Config struct {
	Port            string
	Production      bool
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	ConsumerKey     string
	ConsumerSecret  string
	TokenURL        string
	CampusLocation  *time.Location
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
}

// Load reads the service configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:            GetEnv(EnvPort, DefaultPort),
		Production:      strings.EqualFold(strings.TrimSpace(GetEnv(EnvAppEnv, "development")), production),
		UpstreamBaseURL: strings.TrimSpace(GetEnv(EnvUpstreamBaseURL, DefaultUpstreamBaseURL)),
		UpstreamTimeout: GetDuration(EnvUpstreamTimeout, DefaultUpstreamTimeout),
		ConsumerKey:     GetEnv(EnvConsumerKey, ""),
		ConsumerSecret:  GetEnv(EnvConsumerSecret, ""),
		TokenURL:        GetEnv(EnvTokenURL, ""),
		RedisAddr:       strings.TrimSpace(GetEnv(EnvRedisAddr, "")),
		RedisPassword:   GetEnv(EnvRedisPassword, ""),
		RedisDB:         GetInt(EnvRedisDB, 0),
	}
	if cfg.UpstreamBaseURL == "" {
		return Config{}, fmt.Errorf("%s must not be empty", EnvUpstreamBaseURL)
	}

	loc, err := LoadCampusLocation()
	if err != nil {
		return Config{}, err
	}
	cfg.CampusLocation = loc
	return cfg, nil
}

// LoadCampusLocation resolves the time zone used for meal schedules.
func LoadCampusLocation() (*time.Location, error) {
	name := GetEnv(EnvCampusTimezone, DefaultCampusTimezone)
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvCampusTimezone, err)
	}
	return loc, nil
}
