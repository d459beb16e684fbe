// Package config loads CLI settings from defaults, an optional config file
// and PAGELOADER_ environment variables, in increasing priority.
package config
