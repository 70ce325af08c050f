// Package config loads and validates FilmVault configuration.
//
// Configuration lives in a TOML file (default ~/.config/filmvault/config.toml,
// or filmvault.toml in the working directory). Load applies defaults, expands
// paths, pulls API keys from the environment when the file omits them, and
// validates the result so downstream packages can assume a usable Config.
package config
