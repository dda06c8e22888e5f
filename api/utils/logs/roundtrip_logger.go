package logs

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RoundTripperFunc implements http.RoundTripper for convenient usage.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip satisfies http.RoundTripper and calls fn.
func (fn RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return fn(req)
}

// WithFunc adds fields to the round trip log entry
type WithFunc func(e *zerolog.Event)

// Logger returns a transport wrapper logging every Kubernetes API round trip with the logger from the request context.
// Successful round trips are logged at trace level.
func Logger(fns ...WithFunc) func(t http.RoundTripper) http.RoundTripper {
	return func(t http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			logger := log.Ctx(r.Context())

			resp, err := t.RoundTrip(r)

			var ev *zerolog.Event
			msg := ""
			switch {
			case err != nil:
				ev = logger.Error().Err(err) //nolint:zerologlint // Msg for ev is called later
			case resp.StatusCode >= 400 && resp.StatusCode <= 499:
				ev = logger.Warn() //nolint:zerologlint // Msg for ev is called later
			case resp.StatusCode >= 500:
				ev = logger.Error() //nolint:zerologlint // Msg for ev is called later
			default:
				ev = logger.Trace() //nolint:zerologlint // Msg for ev is called later
			}
			if resp != nil {
				msg = http.StatusText(resp.StatusCode)
			}

			for _, fn := range fns {
				ev.Func(fn)
			}
			ev.
				Str("method", r.Method).
				Stringer("path", r.URL).
				Int64("elapsed_ms", time.Since(start).Milliseconds()).
				Msg(msg)
			return resp, err
		})
	}
}
