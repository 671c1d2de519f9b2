package consts

const (
	ApplicationName    = "Malifaux Tracker Server"
	ApplicationVersion = "v0.4.1"
)
