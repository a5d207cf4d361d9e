package main

import (
	"os"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"

	"github.com/furcode/macfetch/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	log.SetHandler(clihandler.Default)
	os.Exit(cli.Execute(version))
}
