package version

import (
	"fmt"
	"runtime"
)

// ProductName is the product identifier sent to servers in the User-Agent
// header.
const ProductName = "Neo4jClient"

// ClientVersion is the fixed four-part product version. It is part of the
// wire contract: the User-Agent header always has the form
// "Neo4jClient/<major>.<minor>.<build>.<revision>".
const ClientVersion = "1.2.0.0"

// Version is the semantic version, injected at build time.
var Version = "dev"

// GitCommit is the git commit hash, injected at build time.
var GitCommit = "unknown"

// BuildTime is the timestamp when the binary was built, injected at build time.
var BuildTime = "unknown"

// UserAgent returns the value sent in the User-Agent header on every
// outbound request.
func UserAgent() string {
	return ProductName + "/" + ClientVersion
}

// String returns a formatted version string containing version, commit, and build time.
func String() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s, go: %s)",
		ProductName, Version, GitCommit, BuildTime, runtime.Version())
}

// Info returns structured version information.
func Info() map[string]string {
	return map[string]string{
		"version":       Version,
		"clientVersion": ClientVersion,
		"commit":        GitCommit,
		"buildTime":     BuildTime,
		"goVersion":     runtime.Version(),
		"platform":      fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
