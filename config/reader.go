package config

import (
	"os"

	"github.com/pelletier/go-toml"
)

type Custom struct {
	Logger struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"logger"`
	Arithmetic struct {
		Strict    bool  `toml:"strict"`
		Precision int32 `toml:"precision"`
	} `toml:"arithmetic"`
	Storage struct {
		Dir        string `toml:"dir"`
		ValueLogGC bool   `toml:"value-log-gc"`
	} `toml:"storage"`
	RPC struct {
		Port      int `toml:"port"`
		CacheSize int `toml:"cache-size"`
	} `toml:"rpc"`
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	config.fillDefaults()
	return &config, nil
}

func Default() *Custom {
	var config Custom
	config.fillDefaults()
	return &config
}

func (c *Custom) fillDefaults() {
	if c.Logger.Level == 0 {
		c.Logger.Level = 2
	}
	if c.Arithmetic.Precision == 0 {
		c.Arithmetic.Precision = DefaultPrecision
	}
	if c.RPC.Port == 0 {
		c.RPC.Port = DefaultRPCPort
	}
	if c.RPC.CacheSize == 0 {
		c.RPC.CacheSize = DefaultCacheSize
	}
}
