package recovery

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/negroni/v3"
)

// NewMiddleware recovers from panics in handlers, logs them with the global logger and responds with 500
func NewMiddleware() *negroni.Recovery {
	rec := negroni.NewRecovery()
	rec.PrintStack = false
	rec.Logger = &log.Logger
	return rec
}
