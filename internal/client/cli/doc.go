// Package cli provides the interactive authdesk command-line client.
//
// It wires configuration, the session store, the auth service, the route
// guard and a read-eval-print loop. Typical flow: show the guarded home
// screen, let the user register or log in through the form, then move
// between protected screens until logout.
//
// Key features:
//   - Register / Login through a bubbletea or a line-prompt form
//   - Home, Dashboard and Profile screens behind the route guard
//   - Whoami with token expiry
//   - Logout
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
