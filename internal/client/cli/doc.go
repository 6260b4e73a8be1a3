// Package cli provides the interactive taskdeck command-line client.
//
// It wires configuration, the local session database, the REST client and an
// interactive REPL. Commands that need a session are checked with the route
// guards from the session package before they run; admin commands are
// additionally restricted to administrators.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See commands.go for the full command table.
package cli
