// Package session holds the single terminal session every client shares.
//
// A Terminal owns the filesystem tree and the working directory. Execute
// takes an exclusive lock for the whole command, so commands from HTTP and
// WebSocket clients are applied one at a time in arrival order and each sees
// the effects of the ones before it.
//
// Example Usage:
//
//	term := session.NewTerminal(logger).WithMetrics(metrics)
//	if err := term.LoadSeed("seed.yaml"); err != nil {
//		return err
//	}
//	res := term.Execute(ctx, "ls /")
package session
