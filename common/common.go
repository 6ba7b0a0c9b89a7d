package common

import (
	"os"

	"github.com/gin-gonic/gin"
)

var (
	// ProjectID is the GCP project the service logs to. Empty outside GCP.
	ProjectID string

	// GAEService is the app engine service name this process runs as.
	GAEService string

	// GAEVersion is the deployed app engine version.
	GAEVersion string

	// Production flag indicating if app is running the production backend on appengine
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

func init() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	IsLocalhost = gin.Mode() != gin.ReleaseMode
	GAEService = GetEnv("GAE_SERVICE", "covid-api")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")
	Production = ProjectID != "" && !IsLocalhost
}

// GetEnv returns the value of the environment variable named by key,
// or fallback when the variable is unset or empty.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}
