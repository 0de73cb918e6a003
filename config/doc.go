// Package config loads the storagecheck tool's own settings from an optional
// YAML file and environment variables: run mode, env file location, report
// format, HTTP address and log level. Storage credentials are not read here;
// they come from the env file snapshot handled by internal/envfile.
package config
