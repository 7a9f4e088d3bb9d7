// Package config provides configuration loading, merging, and validation
// facilities for the notevault client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables (prefixed with NOTEVAULT_)
//  4. Command-line flags
//
// The main entry point is [GetClientConfig].
package config
