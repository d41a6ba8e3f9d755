package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d local database file path
//	-remote-address base URL of the shared backend
//	-remote-service-key backend service key
//	-request-timeout remote request timeout (e.g., "15s")
//	-probe-timeout connectivity probe timeout (e.g., "3s")
//	-probe-cache-ttl connectivity probe cache window (e.g., "5s")
//	-sync-interval periodic sync interval (e.g., "5m")
//	-sync-initial-delay delay before the first automatic pass (e.g., "10s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var remoteAddress string
	var remoteServiceKey string
	var requestTimeout time.Duration
	var probeTimeout time.Duration
	var probeCacheTTL time.Duration
	var syncInterval time.Duration
	var syncInitialDelay time.Duration
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Local database file path")
	flag.StringVar(&remoteAddress, "remote-address", "", "Shared backend base URL")
	flag.StringVar(&remoteServiceKey, "remote-service-key", "", "Shared backend service key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s)")
	flag.DurationVar(&probeTimeout, "probe-timeout", 0, "Connectivity probe timeout (e.g., 3s)")
	flag.DurationVar(&probeCacheTTL, "probe-cache-ttl", 0, "Connectivity probe cache window (e.g., 5s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 5m)")
	flag.DurationVar(&syncInitialDelay, "sync-initial-delay", 0, "Delay before the first automatic sync pass (e.g., 10s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Remote: Remote{
			BaseURL:        remoteAddress,
			ServiceKey:     remoteServiceKey,
			RequestTimeout: requestTimeout,
			ProbeTimeout:   probeTimeout,
			ProbeCacheTTL:  probeCacheTTL,
		},
		Sync: Sync{
			Interval:     syncInterval,
			InitialDelay: syncInitialDelay,
		},
		JSONFilePath: jsonConfigPath,
	}
}
