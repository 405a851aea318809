// Package version exposes build metadata for xcsv binaries.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the release version, set via ldflags. When empty, [Get] falls
// back to the module version recorded in the build info.
var Version string

// Info describes the running binary.
type Info struct {
	Version   string
	Revision  string
	GoVersion string
	Platform  string
}

// Get collects build metadata from ldflags and [debug.ReadBuildInfo].
func Get() Info {
	info := Info{
		Version:   Version,
		Revision:  "unknown",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		if info.Version == "" {
			info.Version = "devel"
		}

		return info
	}

	if info.Version == "" {
		info.Version = buildInfo.Main.Version
		if info.Version == "" || info.Version == "(devel)" {
			info.Version = "devel"
		}
	}

	modified := false

	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Revision = setting.Value
		case "vcs.modified":
			if setting.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		info.Revision += "-dirty"
	}

	return info
}

// String renders the info on one line.
func (i Info) String() string {
	return fmt.Sprintf("%s (revision %s, %s, %s)",
		i.Version, i.Revision, i.GoVersion, i.Platform)
}
