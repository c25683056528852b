// Package config loads and saves the switchenv configuration file.
package config
