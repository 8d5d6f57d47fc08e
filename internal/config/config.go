// Package config provides functionality for managing configuration
// options for the application using command-line flags, environment
// variables, and an optional JSON config file.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Addr defines the server's listening address (ip:port).
	Addr string

	// DataDir is the directory holding the JSON store slots.
	DataDir string

	// LogLevel sets the zap logging level.
	LogLevel string

	// SeedPosts controls how many posts are generated on first run.
	SeedPosts int

	// GeminiAPIKey is the default key for the generative assist
	// service; a user-profile key overrides it per request.
	GeminiAPIKey string

	// CommentScope selects comment retrieval behavior: "all" (demo
	// default, every comment regardless of post) or "post".
	CommentScope string

	// Config is the path to the config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Addr, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DataDir, "d", "data", "data directory for the JSON store")
	flag.StringVar(&options.LogLevel, "l", "info", "log level")
	flag.IntVar(&options.SeedPosts, "seed", 50, "number of posts seeded on first run")
	flag.StringVar(&options.CommentScope, "comment-scope", "all", `comment retrieval scope ("all" or "post")`)
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags, the optional config file, and
// environment variables to set configuration values. A .env file in
// the working directory is loaded first if present. It returns a
// pointer to the Options struct containing the parsed values.
func Parse() *Options {
	// Load .env if present so GEMINI_API_KEY can live outside the
	// shell profile. Absence is not an error.
	_ = godotenv.Load()

	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Addr = serverAddress
	}
	if dataDir := os.Getenv("DATA_DIR"); dataDir != "" {
		options.DataDir = dataDir
	}
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		options.GeminiAPIKey = apiKey
	}

	return options
}
