// Package config loads and validates reelmatch configuration.
//
// Configuration lives in a TOML file (default ~/.config/reelmatch/config.toml)
// with sections for search preferences, CLI output, and logging. A missing
// file falls back to repository defaults; a present file is decoded on top of
// them and validated.
package config
