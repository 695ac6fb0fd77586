// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"io"
	"net/http"

	phttp "driptime/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Data is an alias for OK
func Data(v any) Response { return phttp.Data(v) }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// CSV streams a CSV attachment through the platform writer
func CSV(w http.ResponseWriter, r *http.Request, filename string, write func(io.Writer) error) error {
	return phttp.RespondCSV(w, r, filename, write)
}

// RespondError writes an error envelope for handlers that bypass the Response adapters
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	phttp.RespondError(w, r, err)
}
