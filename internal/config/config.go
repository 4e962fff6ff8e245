package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir   string     `env:"SPA_DIR" envDefault:"../web/dist"`

	// RosterDB is the libSQL database the roster is loaded from at startup.
	RosterDB string `env:"ROSTER_DB" envDefault:":memory:"`

	QRSize       int     `env:"QR_SIZE" envDefault:"180"`
	MapsAPIKey   string  `env:"MAPS_API_KEY"`
	MapZoom      int     `env:"MAP_ZOOM" envDefault:"13"`
	MapCenterLat float64 `env:"MAP_CENTER_LAT" envDefault:"-12.0464"`
	MapCenterLng float64 `env:"MAP_CENTER_LNG" envDefault:"-77.0428"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
