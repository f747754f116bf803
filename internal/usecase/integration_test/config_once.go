package integrationtest

import (
	"sync"

	"github.com/AdAndRoll/movie-search-server/internal/config"
)

var (
	cfg     *config.Config
	cfgOnce sync.Once
)

func getConfig() *config.Config {
	cfgOnce.Do(func() {
		cfg = config.FromEnv()
	})
	return cfg
}
