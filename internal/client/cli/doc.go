// Package cli provides the interactive sharebox command-line client.
//
// It wires configuration, the API session, the local share mirror and an
// interactive REPL. Typical flow: login with the configured API key and a
// prompted password, then manage shares and files with short commands.
//
// Key commands:
//   - login / whoami
//   - shares / cached / show
//   - create / retitle / rm
//   - upload / download / rmfile
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
