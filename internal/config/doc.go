// Package config provides configuration loading, merging, and validation
// facilities for the client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON or TOML config file
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] and [GetClientConfig].
package config
