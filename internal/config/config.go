package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Requests
		Audit
		Library
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Requests struct {
		ProcessEnabled  bool
		ProcessSchedule string // Cron format: "* * * * *" = every minute
	}
	Audit struct {
		Dir string // Empty disables the journal
	}
	Library struct {
		SeedDemoData bool // Add the demo books and users on startup
		ReadOnly     bool // Reject write API requests
	}
)

func NewConfig() *Config {
	return newConfig(viper.New())
}

func newConfig(v *viper.Viper) *Config {
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("requests_process_enabled", true)
	v.SetDefault("requests_process_schedule", DefaultProcessSchedule)
	v.SetDefault("audit_dir", "")
	v.SetDefault("seed_demo_data", true)
	v.SetDefault("read_only", false)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Requests: Requests{
			ProcessEnabled:  v.GetBool("REQUESTS_PROCESS_ENABLED"),
			ProcessSchedule: v.GetString("REQUESTS_PROCESS_SCHEDULE"),
		},
		Audit: Audit{
			Dir: v.GetString("AUDIT_DIR"),
		},
		Library: Library{
			SeedDemoData: v.GetBool("SEED_DEMO_DATA"),
			ReadOnly:     v.GetBool("READ_ONLY"),
		},
	}
}
