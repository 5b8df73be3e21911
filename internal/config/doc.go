// Package config loads, validates and saves the YAML properties file.
//
// The file maps property names to raw string values and sets the log level:
//
//	log_level: info
//	properties:
//	  timeout: 5s
//	  retries: "3"
package config
