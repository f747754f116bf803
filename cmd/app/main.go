package main

import (
	"github.com/AdAndRoll/movie-search-server/internal/app"
	"github.com/AdAndRoll/movie-search-server/internal/config"
)

// @title Movie Search Server API
// @version 1.0
// @BasePath /api/v1
func main() {
	app.Go(config.Load())
}
