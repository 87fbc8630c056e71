package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Info contains version and build information.
type Info struct {
	Version   string
	BuildTime string
	GoVersion string
	Platform  string
}

// String renders Info for --version.
func (i Info) String() string {
	return fmt.Sprintf("ghusers version %s\nBuilt: %s\nGo version: %s\nPlatform: %s",
		i.Version, i.BuildTime, i.GoVersion, i.Platform)
}

// Get returns the current version information from the embedded
// build info.
func Get() Info {
	info := Info{
		Version:   "unknown",
		BuildTime: "unknown",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, setting := range bi.Settings {
		if setting.Key == "vcs.time" {
			info.BuildTime = setting.Value
		}
	}
	return info
}
