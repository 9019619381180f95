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

// Get returns the current version information.
func Get() Info {
	buildVersion := "unknown"
	buildTime := "unknown"
	goVer := runtime.Version()

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			buildVersion = info.Main.Version
		}

		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.time":
				buildTime = setting.Value
			}
		}
	}

	return Info{
		Version:   buildVersion,
		BuildTime: buildTime,
		GoVersion: goVer,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// VersionCmd prints version and build information.
type VersionCmd struct{}

func (cmd *VersionCmd) Run(g *Globals) error {
	info := Get()
	fmt.Printf("ghsieve version %s\n", info.Version)
	fmt.Printf("Built: %s\n", info.BuildTime)
	fmt.Printf("Go version: %s\n", info.GoVersion)
	fmt.Printf("Platform: %s\n", info.Platform)
	return nil
}
