package shell

import "github.com/GriffinCanCode/termweb/internal/shared/types"

// Status is the outcome of a command.
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Result is what a command produces. Cwd is rendered after any mutation the
// command performed.
type Result struct {
	Output string
	Cwd    string
	Status Status
	Clear  bool

	// Command is the first token, empty for blank input.
	Command string
	// Err is the failure behind a StatusError result.
	Err error
}

// OK reports whether the command succeeded
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Response converts r to its wire form.
func (r Result) Response() types.CommandResponse {
	return types.CommandResponse{
		Output: r.Output,
		Cwd:    r.Cwd,
		Status: string(r.Status),
		Clear:  r.Clear,
	}
}
