package config

const (
	// DefaultPort is the HTTP port used by the serve command
	DefaultPort = 8188

	// DefaultProcessSchedule drains the request queue once a minute
	DefaultProcessSchedule = "* * * * *"
)
