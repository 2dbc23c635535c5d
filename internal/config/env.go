package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultAppAddr      = ":8080"
	DefaultTripsBaseURL = "http://localhost:4001"
	DefaultTripsTimeout = 10 * time.Second
	DefaultTooltipDelay = 2 * time.Second
)

type Env struct {
	AppAddr string
	GinMode string

	// TripsBaseURL is the origin of the remote listing service; /trips is appended.
	TripsBaseURL string
	TripsTimeout time.Duration
	TooltipDelay time.Duration

	// PDFFontPath is an optional UTF-8 TrueType font for PDF exports.
	PDFFontPath string

	CORSAllowedOrigins []string
	SSL                bool
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = DefaultAppAddr
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("TRIPS_API_BASE_URL")), "/")
	if baseURL == "" {
		baseURL = DefaultTripsBaseURL
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            ginMode,
		TripsBaseURL:       baseURL,
		TripsTimeout:       durationEnv("TRIPS_API_TIMEOUT", DefaultTripsTimeout),
		TooltipDelay:       durationEnv("TOOLTIP_DELAY", DefaultTooltipDelay),
		PDFFontPath:        strings.TrimSpace(os.Getenv("PDF_FONT_PATH")),
		CORSAllowedOrigins: listEnv("CORS_ALLOWED_ORIGINS"),
		SSL:                boolEnv("APP_SSL"),
	}
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("warning: invalid %s=%q, using %s", key, raw, def)
		return def
	}
	return d
}

func boolEnv(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && v
}

func listEnv(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	var out []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
