package main

import (
	"github.com/quiltmc-tools/quiltver/cmd"
	"github.com/quiltmc-tools/quiltver/config"
)

var Version string

func main() {
	config.SetVersion(Version)
	cmd.Execute()
}
