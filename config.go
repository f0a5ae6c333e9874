package route2gpx

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// EnvAccessToken Environment variable holding the Mapbox access token
const EnvAccessToken = "MAPBOX_ACCESS_TOKEN"

// LoadAccessToken reads the Mapbox access token from the environment,
// loading a .env file from the working directory first when one exists.
// A missing token is a pre-flight error: nothing should hit the network
// without it.
func LoadAccessToken() (string, error) {
	_ = godotenv.Load()
	token := os.Getenv(EnvAccessToken)
	if token == "" {
		return "", errors.Errorf("%s is not set", EnvAccessToken)
	}
	return token, nil
}
