package helpers

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a config duration such as "10s" or "1h". An empty or
// non-positive value yields defaultDuration; a malformed one is logged first.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	durationStr = strings.TrimSpace(durationStr)
	if durationStr == "" {
		return defaultDuration
	}

	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// The global logger may not be configured yet when config is parsed.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	if duration <= 0 {
		return defaultDuration
	}
	return duration
}
