// Package config provides configuration loading, merging, and validation
// facilities for the contract node and the marketplace client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetServerConfig] for the contract node and
// [GetClientConfig] for the marketplace client.
package config
