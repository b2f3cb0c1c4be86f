// Package build hands the build information set at link time to
// prometheus/common/version, which prints it for --version.
//
//	go build -ldflags "-X github.com/grafana/joinviz/pkg/util/build.Version=v0.1.0"
package build

import (
	"github.com/prometheus/common/version"
)

var (
	Version   = "N/A"
	Revision  = "N/A"
	Branch    = "N/A"
	BuildUser = "N/A"
	BuildDate = "N/A"
)

func init() {
	version.Version = Version
	version.Revision = Revision
	version.Branch = Branch
	version.BuildUser = BuildUser
	version.BuildDate = BuildDate
}
