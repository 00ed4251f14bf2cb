// Package httpapi is the inbound side of the relay.
//
// Routes returns an http.Handler that accepts POST on any path, reads the body
// (plain or chunked), hands it to the relay and always answers 200 with
//
//	{"status": "ok"}     when the notification was forwarded
//	{"status": "error"}  when any stage failed
//
// Other methods get the ServeMux default 405. Every request is logged with a
// request id that is also returned in the X-Request-Id header.
package httpapi
