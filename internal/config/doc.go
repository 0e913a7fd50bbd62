// Package config provides configuration loading, merging, and validation
// facilities for the vault client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// Fields left empty by every source fall back to [Defaults]. The main entry
// point is [GetClientConfig].
package config
