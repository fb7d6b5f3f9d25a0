package config

import "os"

// Addr returns the listen address for the HTTP server, ":8080" unless
// APP_PORT says otherwise.
func Addr() string {
	if port, ok := os.LookupEnv("APP_PORT"); ok && port != "" {
		return port
	}
	return ":8080"
}

// LogFile returns the rotating-log destination; empty disables file
// logging.
func LogFile() string {
	return os.Getenv("APP_LOG_FILE")
}
