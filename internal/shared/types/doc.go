// Package types provides the wire types shared by the server, the stream
// handler and the command-line client.
//
// Request Types:
//   - CommandRequest: {"command": "..."}
//   - WSMessage: stream frame from a client ("command", "ping")
//
// Response Types:
//   - CommandResponse: {"output", "cwd", "status", "clear"}
//   - WSResult: command outcome on the stream ("result")
//   - WSNotice: control frame on the stream ("system", "pong", "error")
//
// Example Usage:
//
//	req := types.NewCommandRequest("ls /")
//	var resp types.CommandResponse
package types
