package config

import "fmt"

// The following vars are injected at build time, e.g.
// go build -ldflags "-X github/chapool/seedconv/internal/config.Commit=$(git rev-parse HEAD)"
var (
	ModuleName = "github/chapool/seedconv"
	Commit     = "< 40 chars git commit hash via ldflags >"
	BuildDate  = "< build date via ldflags >"
)

// GetFormattedBuildArgs returns string representation of buildsargs set via ldflags "<ModuleName> @ <Commit> (<BuildDate>)"
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
