package version

import (
	"fmt"
	"runtime"
	"strings"
)

// devVersion is the version of binaries built without ldflags
const devVersion = "dev"

var (
	// These variables are set at build time using ldflags
	Version   = devVersion
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildDate = "unknown"
)

// Info holds version information
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	GitTag    string `json:"gitTag"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns version information
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		GitTag:    GitTag,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Resolve returns version information, using the module version recorded by
// "go install" when no version was set through ldflags.
func Resolve(moduleVersion string) Info {
	info := Get()
	if info.Version == devVersion && moduleVersion != "" && moduleVersion != "(devel)" {
		info.Version = moduleVersion
	}
	return info
}

// String returns a human-readable version string
func (i Info) String() string {
	lines := []string{fmt.Sprintf("jig version %s", i.Version)}
	if i.GitCommit != "unknown" {
		lines = append(lines, "Git commit: "+i.GitCommit)
	}
	if i.GitTag != "unknown" {
		lines = append(lines, "Git tag: "+i.GitTag)
	}
	if i.BuildDate != "unknown" {
		lines = append(lines, "Build date: "+i.BuildDate)
	}
	lines = append(lines, "Go version: "+i.GoVersion, "Platform: "+i.Platform)
	return strings.Join(lines, "\n")
}
