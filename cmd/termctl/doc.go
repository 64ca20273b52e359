// Package main is termctl, an interactive client for a termweb server.
//
// Each line typed is sent to /api/command; output is printed and the prompt
// follows the session's working directory. On a terminal, lines are edited
// with history and errors are shown in red; "clear" clears the screen. With
// redirected input, errors go to stderr instead.
//
// Usage:
//
//	termctl                          # interactive session on localhost:3000
//	termctl -server http://host:3000
//	termctl -c "ls /"                # one command, exit status 1 on error
//	TERMWEB_URL=http://host:3000 termctl < script.txt
package main
