package app

import (
	"log"

	"github.com/y7ut/tiles/grid"
)

// Journal writes one log line per applied mutation.
type Journal struct {
	logger *log.Logger
}

func NewJournal(logger *log.Logger) *Journal {
	if logger == nil {
		logger = log.Default()
	}
	return &Journal{logger: logger}
}

func (j *Journal) Sync(e grid.Event) {
	j.logger.Printf("[tiles] %s", e)
}
