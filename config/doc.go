// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Values from a .env file and TC_* environment variables override the file.
package config
