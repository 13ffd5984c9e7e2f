package app

import (
	"io"
	"log"

	"github.com/y7ut/tiles/pkg/file"
)

// Init routes the standard logger into logPath/logName.
// The terminal belongs to the widget while it runs, so nothing is logged to stderr.
func Init(logPath, logName string) (io.Closer, error) {
	writerLog, err := file.OpenAppend(logPath, logName)
	if err != nil {
		return nil, err
	}
	log.Default().SetFlags(log.LstdFlags)
	log.Default().SetOutput(writerLog)
	return writerLog, nil
}
