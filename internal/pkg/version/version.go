package version

import "runtime/debug"

// Set at build time, e.g.
//
//	go build -ldflags "-X golang-netsweep/internal/pkg/version.tag=v0.1.0"
var (
	tag    = "none"
	branch = "unknown"
	commit = ""
	dirty  = ""
)

type gitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

// GetGitInfo returns the git metadata of the running binary. Values not
// injected with -ldflags are taken from the embedded VCS build settings.
func GetGitInfo() gitInfo {
	info := gitInfo{
		Commit: commit,
		Branch: branch,
		Tag:    tag,
		Dirty:  dirty == "dirty",
	}

	if info.Commit != "" {
		return info
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Commit = s.Value
			case "vcs.modified":
				info.Dirty = s.Value == "true"
			}
		}
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	return info
}
