// Package config provides configuration management for lon.
//
// Configuration is layered: built-in defaults, then the user file, then the
// project file, each overriding only the keys it sets.
//
//  1. Defaults (GetDefaultConfig)
//  2. User configuration (~/.config/lon/config.yaml)
//  3. Project configuration (./.lon/config.yaml)
//
// A missing file is skipped. A file that is not valid YAML, or that sets a
// value Validate rejects, stops startup.
//
// # Example
//
//	ui:
//	  multiplier: 500
//	  defaultLibrary: solid-coated
//	  sortOrder: lightness
//	  darkMode: false
//	  toastTimeout: 2s
//	catalog:
//	  dataDir: ./palettes
//
// The --config flag replaces both file layers with a single
// <dir>/config.yaml.
package config
