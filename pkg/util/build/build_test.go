package build

import (
	"testing"

	"github.com/prometheus/common/version"
	"github.com/stretchr/testify/assert"
)

func TestVersionInfo(t *testing.T) {
	assert.Equal(t, Version, version.Version)
	assert.Equal(t, Revision, version.Revision)
	assert.Contains(t, version.Print("joinviz"), "joinviz, version "+Version)
}
