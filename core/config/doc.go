// Package config provides configuration management for the supply ledger.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags next to each
// partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP port, operator API key, operator identity
//   - Database: MySQL/SQLite connection for snapshot persistence
//   - Storage: S3/MinIO credentials and metadata bucket
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
