// Package buildinfo exposes values stamped into the binary at link time.
//
// Example:
//
//	go build -ldflags "-X github.com/dmitrijs2005/taskdeck/internal/buildinfo.Version=v1.2.0 \
//	  -X github.com/dmitrijs2005/taskdeck/internal/buildinfo.APIURL=https://api.example.com" ./cmd/cli
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"

	// APIURL is the build-time public API base URL. When set it takes
	// precedence over the PUBLIC_API_URL environment variable.
	APIURL = ""
)

// PrintBuildData writes version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
