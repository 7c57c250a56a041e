package buildinfo

// Version is set at build time via -ldflags. VER prints it.
var Version = "0.0.2"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Commit != "" && Commit != "unknown" {
		return Version + "+" + Commit
	}
	return Version
}
