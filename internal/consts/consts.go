package consts

const (
	ApplicationName    = "Pic Share Server"
	ApplicationVersion = "v1.2.0"
)
