package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP        string // Host IP for the server
	RESTPort      int    // Port for the REST API
	GinMode       string // Mode for the Gin framework (e.g., release, debug, test)
	MazeCols      int    // Default number of maze columns
	MazeRows      int    // Default number of maze rows
	WallThickness int    // Default wall thickness in pixels
	MazeSeed      int64  // Generator seed; 0 picks a fresh seed for every round
	LogLevel      string // Minimum log level (debug, info, warning, error)
	LogFormat     string // Log output format (text or json)
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:        getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:      getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		MazeCols:      getEnvAsIntWithDefault("MAZE_COLS", 4),
		MazeRows:      getEnvAsIntWithDefault("MAZE_ROWS", 8),
		WallThickness: getEnvAsIntWithDefault("MAZE_WALL_THICKNESS", 8),
		MazeSeed:      int64(getEnvAsIntWithDefault("MAZE_SEED", 0)),
		LogLevel:      getEnvWithDefault("LOG_LEVEL", "info"),
		LogFormat:     getEnvWithDefault("LOG_FORMAT", "text"),
	}
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer, or a default value if not set.
// It logs a fatal error if the value cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
