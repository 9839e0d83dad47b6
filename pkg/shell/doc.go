// Package shell hosts the dashboard runtime behind HTTP. It serves the thin
// client page, upgrades /ws to a WebSocket, and runs one Session per
// connection: inbound frames carry navigation signals and DOM events, outbound
// frames carry freshly rendered HTML regions. The shell knows nothing about
// views or routes; the hosted App does.
package shell
