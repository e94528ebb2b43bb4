// Package cli provides the interactive userreg command-line front-end.
//
// It wires configuration, the SQLite database and the UserStore service, and
// runs a small REPL on top of them:
//
//   - register      — create an account (username, email, password)
//   - login         — check credentials
//   - logout        — forget the logged-in user
//   - list          — print every registered user
//   - help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input is exhausted.
package cli
