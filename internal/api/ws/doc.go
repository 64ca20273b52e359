// Package ws streams commands to the shared terminal over a WebSocket.
//
// Message Types (Client → Server):
//   - command: run {"command": "..."} against the session
//   - ping: keep-alive ping
//
// Message Types (Server → Client):
//   - system: sent once on connect, carries the current cwd
//   - result: a command's output, cwd, status and clear flag
//   - pong: reply to ping
//   - error: malformed frame or unknown message type
//
// Any frame may carry an "id", which is echoed on its reply.
//
// Example Usage:
//
//	handler := ws.NewHandler(terminal, metrics, logger)
//	router.GET("/api/stream", handler.HandleConnection)
package ws
