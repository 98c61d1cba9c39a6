// Package main is the single-binary entrypoint for heropath — a local,
// offline habit-gamification engine. One binary, one SQLite file, no accounts.
package main

import (
	"github.com/heropath-app/heropath/internal/api"
	"github.com/heropath-app/heropath/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	api.Version = version
	cli.Execute(version)
}
