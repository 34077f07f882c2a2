package main

import (
	"github.com/selebrow/steward/pkg/app"
)

const appName = "steward"

var (
	GitSha = "unknown"
	GitRef = "unknown"
)

func main() {
	app.Run(GitRef, GitSha, appName)
}
