// Package config loads the configuration of the project client and the
// remote collection server.
//
// Values come from built-in defaults, environment variables (caarlos0/env),
// command-line flags and an optional JSON file, merged in that order with
// dario.cat/mergo so later sources override earlier non-zero values.
// [GetClientConfig] and [GetServerConfig] project the merged
// [StructuredConfig] onto the settings each binary needs and validate them.
package config
