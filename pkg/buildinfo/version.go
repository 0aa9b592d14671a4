// Package buildinfo holds the version stamped into speedo binaries.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/speedo/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/speedo/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/speedo/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// The version also scopes cached artifacts, so a new renderer never serves
// images cached by an older one.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

const shortCommitLen = 7

// ShortCommit returns the first seven characters of Commit.
func ShortCommit() string {
	if len(Commit) > shortCommitLen {
		return Commit[:shortCommitLen]
	}
	return Commit
}

// Renderer identifies the build that produced an artifact, e.g.
// "v0.3.0+3f2a9c1". It is part of every cache key.
func Renderer() string {
	return Version + "+" + ShortCommit()
}

// ServerHeader is the value of the HTTP Server header, e.g. "speedo/v0.3.0".
func ServerHeader() string {
	return "speedo/" + Version
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, ShortCommit(), Date)
}
