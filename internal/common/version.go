package common

import (
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/pelletier/go-toml/v2"
)

// Build metadata, overridable at build time via ldflags.
var (
	Version   = "dev"
	Build     = "unknown"
	GitCommit = "unknown"
)

// GetVersion returns the semantic version string.
func GetVersion() string {
	return Version
}

// GetBuild returns the build timestamp.
func GetBuild() string {
	return Build
}

// GetGitCommit returns the short commit hash. When ldflags did not stamp
// one, the revision recorded in the binary's build info is used instead.
func GetGitCommit() string {
	if GitCommit != "unknown" {
		return GitCommit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 8 {
				return s.Value[:8]
			}
		}
	}
	return GitCommit
}

// versionFile is the optional TOML companion shipped next to the binary.
type versionFile struct {
	Version string `toml:"version"`
	Build   string `toml:"build"`
}

// LoadVersionFromFile fills version metadata from a .version file in the
// binary's directory. File values only apply where ldflags left the
// defaults in place.
func LoadVersionFromFile() {
	exe, err := os.Executable()
	if err != nil {
		return
	}
	loadVersionFile(filepath.Join(filepath.Dir(exe), ".version"))
}

func loadVersionFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var vf versionFile
	if err := toml.Unmarshal(data, &vf); err != nil {
		return
	}

	if Version == "dev" && vf.Version != "" {
		Version = vf.Version
	}
	if Build == "unknown" && vf.Build != "" {
		Build = vf.Build
	}
}
