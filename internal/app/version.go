package app

import (
	"fmt"
	"runtime"
)

const appName = "zakat-tracker"

// Overridden at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/zakat-tracker/internal/app.Version=1.2.0 -X ...Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the one-line build description printed by -version and
// logged at startup.
func BuildVersion() string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)", appName, Version, Commit, BuildTime, runtime.Version())
}
