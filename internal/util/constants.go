package util

const (
	ModeRelease = "release"
	ModeDebug   = "debug"
)

const (
	DashboardCard  = "card"
	DashboardLearn = "learn"
)
