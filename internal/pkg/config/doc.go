// Package config provides functionality for loading and validating application configuration.
//
// Settings are read from a YAML file, overridden by CRYPTO_FACADE_* environment variables
// (optionally seeded from a .env file) and validated before use.
package config
