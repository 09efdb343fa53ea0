package main

import (
	"runtime/debug"
)

const (
	defaultCommit     = "none"
	shortRevisionSize = 12
)

var readBuildInfo = debug.ReadBuildInfo

// initVersion fills in version and commit from the embedded build info when
// GoReleaser did not set them, e.g. for `go install` builds.
func initVersion() {
	if version != defaultVersion && commit != defaultCommit {
		return
	}

	info, ok := readBuildInfo()
	if !ok || info == nil {
		return
	}

	if version == defaultVersion && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}

	if commit == defaultCommit {
		if rev := buildSetting(info, "vcs.revision"); rev != "" {
			if len(rev) > shortRevisionSize {
				rev = rev[:shortRevisionSize]
			}
			if buildSetting(info, "vcs.modified") == "true" {
				rev += "-dirty"
			}
			commit = rev
		}
	}
}

func buildSetting(info *debug.BuildInfo, key string) string {
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// versionString is printed by --version.
func versionString() string {
	if commit == defaultCommit || commit == "" {
		return version
	}
	return version + " (" + commit + ")"
}
