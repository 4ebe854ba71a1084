// Package server exposes the generation pipeline over HTTP.
//
// Routes:
//
//	POST /generate  floor plan in, generated frame out
//	GET  /rules     registered rule IDs and names
//	GET  /health    liveness probe
//
// The server is a thin transport: request bodies decode into the model
// types, the FrameService does the work, and the frame serializes back
// with the snake_case field names of the data model. CORS is open for
// the dev frontend; every response carries an X-Request-ID for log
// correlation.
package server
