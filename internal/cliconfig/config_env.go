package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (PARALOGMASK_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv("PARALOGMASK_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv("PARALOGMASK_LOG_FORMAT"), &cfg.LogFormat)
	s.setBoolFromString("mmap", os.Getenv("PARALOGMASK_MMAP"), &cfg.MMap)

	return s.setIntFromString("chunk-size", os.Getenv("PARALOGMASK_CHUNK_SIZE"), &cfg.ChunkSize)
}
