package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// Network
	Host              string `envconfig:"HTTP_HOST" default:"localhost"`
	Port              string `envconfig:"HTTP_PORT" default:"8092"`
	ReadHeaderTimeout int    `envconfig:"HTTP_READ_HEADER_TIMEOUT_SEC" default:"20"`
	LivenessEndpoint  string `envconfig:"LIVENESS_ENDPOINT" default:"/liveness"`
	// Sessions
	SessionCookie string `envconfig:"SESSION_COOKIE" default:"session_id"`
}

func Load() (App, error) {
	var c App

	if err := envconfig.Process("", &c); err != nil {
		return c, fmt.Errorf("process env config: %w", err)
	}

	return c, nil
}
