// Package config loads runtime configuration for the Ourganize CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   URL of the backend GraphQL endpoint
//	-s string   base URL of the site (OAuth redirect links)
//	-d string   path of the local cache database
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so the value can be
// either a string like "15s" or integer nanoseconds:
//
//	{
//	  "api_endpoint_url": "http://127.0.0.1:8000/graphql",
//	  "site_base_url": "http://127.0.0.1:8000",
//	  "database_path": "ourganize.db",
//	  "request_timeout": "15s"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
