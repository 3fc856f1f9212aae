// Package build describes the running blockrules binary.
package build

import (
	"runtime/debug"
	"strings"
)

// RepoURL is the project home.
const RepoURL = "https://github.com/bnema/blockrules"

// Contributors lists the project authors shown by "blockrules about".
var Contributors = []string{"bnema"}

// Info is the version data set through -ldflags at link time.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Resolve fills the fields ldflags left at their defaults from the module
// build info embedded by the Go toolchain, as "go install" builds have none.
func (i Info) Resolve() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	return i.resolveFrom(bi)
}

func (i Info) resolveFrom(bi *debug.BuildInfo) Info {
	if unset(i.Version) && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	if unset(i.GoVersion) {
		i.GoVersion = bi.GoVersion
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if unset(i.Commit) {
				i.Commit = s.Value
			}
		case "vcs.time":
			if unset(i.BuildDate) {
				i.BuildDate = s.Value
			}
		}
	}
	return i
}

// ShortCommit returns the first 7 characters of the commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// String renders the version line printed by --version.
func (i Info) String() string {
	var sb strings.Builder
	sb.WriteString(i.Version)
	if c := i.ShortCommit(); !unset(c) {
		sb.WriteString(" (" + c + ")")
	}
	return sb.String()
}

func unset(s string) bool {
	return s == "" || s == "dev" || s == "unknown"
}
