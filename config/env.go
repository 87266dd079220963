package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()
}

// Config holds the engine's tunables. Every field has a sensible default so
// an empty environment yields the reference behavior.
type Config struct {
	HorizonDays            int
	SlotGranularityMinutes int
	TopSuggestions         int
	WorkingHoursStart      int // hour of day
	WorkingHoursEnd        int // hour of day
	ExcludeWeekends        bool
	PatternTTLHours        int
	SweepIntervalMinutes   int
	Parallelism            int // 0 means one worker per CPU
}

// LoadFromEnv reads TIMEWISE_* environment variables over the defaults.
func LoadFromEnv() *Config {
	return &Config{
		HorizonDays:            getEnvAsIntOrDefault("TIMEWISE_HORIZON_DAYS", 14),
		SlotGranularityMinutes: getEnvAsIntOrDefault("TIMEWISE_SLOT_GRANULARITY_MINUTES", 30),
		TopSuggestions:         getEnvAsIntOrDefault("TIMEWISE_TOP_SUGGESTIONS", 5),
		WorkingHoursStart:      getEnvAsIntOrDefault("TIMEWISE_WORKING_HOURS_START", 9),
		WorkingHoursEnd:        getEnvAsIntOrDefault("TIMEWISE_WORKING_HOURS_END", 18),
		ExcludeWeekends:        getEnvAsBoolOrDefault("TIMEWISE_EXCLUDE_WEEKENDS", true),
		PatternTTLHours:        getEnvAsIntOrDefault("TIMEWISE_PATTERN_TTL_HOURS", 24),
		SweepIntervalMinutes:   getEnvAsIntOrDefault("TIMEWISE_SWEEP_INTERVAL_MINUTES", 10),
		Parallelism:            getEnvAsIntOrDefault("TIMEWISE_PARALLELISM", 0),
	}
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
