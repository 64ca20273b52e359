// Package shell interprets the fixed builtin vocabulary against a vfs.Tree.
//
// A command line is trimmed, tokenized (single and double quotes, no escapes),
// and dispatched on its first token through a closed table of builtins:
//
//	help  pwd  ls [path]  cd [path]  mkdir <name>...  touch <name>...
//	cat <file>...  echo <text...> [> file | >> file]  clear
//
// Failures never escape Execute. They are folded into a Result with
// StatusError and a human-readable message, and the State stays usable.
// Multi-argument mkdir and touch stop at the first failure and keep what
// they already applied; cat discards collected output on its first failure.
package shell
