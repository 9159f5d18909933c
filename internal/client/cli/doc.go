// Package cli provides the interactive Alerta Verde command-line client.
//
// It wires configuration, the local session database, the backend and
// weather services, and a REPL. At startup a stored session is restored
// (falling back to the cached profile when the backend is unreachable) and
// a background watcher keeps the online/offline indicator current.
//
// Commands:
//   - register / login / logout / whoami
//   - weather [city]: current conditions, 5-day forecast and planting advice
//   - refresh: drop cached weather and reload
//   - crops / addcrop / delcrop [id]
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
