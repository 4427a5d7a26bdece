// Package config loads atpoint configuration.
//
// A configuration file is TOML (.toml) or YAML (.yaml, .yml):
//
//	log_level = "debug"
//	default_trigger = "RET"
//	detectors = ["region", "url", "number", "identifier"]
//	sticky = ["url.host"]
//	scripts = ["~/.config/atpoint/rot13.lua"]
//
//	[keys.url]
//	"C-c o" = "url.browse"
//
// Environment variables prefixed with ATPOINT_ override file values.
// A Watcher reloads the file when it changes on disk.
package config
