package main

import (
	"os"

	_ "github.com/ebitengine/hideconsole"

	"github.com/golangdaddy/racinggame/pkg/directories"
	"github.com/golangdaddy/racinggame/pkg/game"
	"github.com/golangdaddy/racinggame/pkg/program"
)

func main() {
	os.Exit(program.Run(program.Options{
		Dirs: directories.Default(),
		Play: game.Play,
	}))
}
