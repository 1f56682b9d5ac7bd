package config

const (
	Debug        = true
	BuildVersion = "v0.1.0-BUILD_VERSION"

	DefaultPrecision = 8
	DefaultRPCPort   = 6870
	DefaultCacheSize = 1024 * 1024 * 32

	HistoryListLimit = 500
)
