package constant

// runtime.GOOS values the terminal helpers branch on.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)
