package version

import "runtime/debug"

// Version is the release version, overridable at build time with
// -ldflags "-X github.com/stevemurr/appicon/version.Version=...".
var Version = "0.1.0"

// Revision is the VCS revision recorded in the build info.
var Revision = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return "unknown"
}()
