// Package config manages user-level settings stored at ~/.uisx/config.yaml.
// Values can also come from UISX_* environment variables and from command
// flags bound by the cli package. Settings cover the default layer stack,
// the layer cache and the log level.
package config
