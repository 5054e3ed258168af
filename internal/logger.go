package internal

import (
	"fmt"
	"log"
	"os"
)

// Logging is the interface used to print warnings. *log.Logger implements it.
type Logging interface {
	Printf(format string, v ...any)
}

type logger struct {
	log *log.Logger
}

func (l *logger) Printf(format string, v ...any) {
	_ = l.log.Output(2, fmt.Sprintf(format, v...))
}

var Warn Logging = &logger{
	log: log.New(os.Stderr, "WARN: bigassert: ", log.LstdFlags),
}

func SetLogger(l Logging) {
	Warn = l
}
