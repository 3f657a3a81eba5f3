// Package config provides configuration loading, merging, and validation
// facilities for the bootstrap service and its CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env mode files (Vite layout: .env, .env.local, .env.[mode], .env.[mode].local)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetServerConfig] for the server and
// [GetClientConfig] for the CLI. Wallet inputs are loaded raw; defaults for
// them belong to the init config assembler in package service.
package config
