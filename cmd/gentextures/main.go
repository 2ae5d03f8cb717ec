// Command gentextures writes the stock lane and car textures into the
// textures directory next to the game executable.
package main

import (
	"os"

	"github.com/golangdaddy/racinggame/pkg/directories"
	"github.com/golangdaddy/racinggame/pkg/logging"
	"github.com/golangdaddy/racinggame/pkg/models/car"
	"github.com/golangdaddy/racinggame/pkg/textures"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.Setup(os.Stdout, false)

	dir := directories.Default().Path(directories.Textures)
	paths, err := textures.WriteAll(dir, car.DefaultCars())
	for _, p := range paths {
		log.Info().Str("file", p).Msg("Generated texture")
	}
	if err != nil {
		log.Error().Err(err).Msg("Texture generation failed")
		os.Exit(1)
	}
	log.Info().Int("count", len(paths)).Msg("Texture generation complete")
}
