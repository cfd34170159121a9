package config

import "fmt"

// Version is injected at build time through main; the default marks
// unversioned local builds.
var Version = "0.0.0-dev"

func SetVersion(version string) {
	if version != "" {
		Version = version
	}
}

// UserAgent identifies this tool to the Quilt version services.
func UserAgent() string {
	return fmt.Sprintf("quiltver/%s", Version)
}
