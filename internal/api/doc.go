// Package api is the REST client for the dashboard backend. The
// realtime subsystem uses it only as a token store: Login exchanges the
// dashboard password for a bearer token consumed by the WebSocket auth
// handshake. Polling endpoints like the executor status are external
// collaborators of the feed, not part of it.
package api
