package types

// CommandRequest is one command line sent by a client. Command is a pointer
// so a missing field can be told apart from an empty line.
type CommandRequest struct {
	Command *string `json:"command" binding:"required"`
}

// CommandResponse is the outcome of one command line.
type CommandResponse struct {
	Output string `json:"output"`
	Cwd    string `json:"cwd"`
	Status string `json:"status"`
	Clear  bool   `json:"clear"`
}

// WSMessage is a frame received on the command stream. ID is optional and
// echoed back on the reply.
type WSMessage struct {
	Type    string `json:"type"`
	ID      string `json:"id,omitempty"`
	Command string `json:"command,omitempty"`
}

// WSNotice is a control frame sent on the command stream
type WSNotice struct {
	Type    string `json:"type"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
	Cwd     string `json:"cwd,omitempty"`
}

// WSResult carries one command's outcome on the command stream
type WSResult struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
	CommandResponse
}

// NewCommandRequest wraps a command line for sending
func NewCommandRequest(command string) CommandRequest {
	return CommandRequest{Command: &command}
}
