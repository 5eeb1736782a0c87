// Package cli provides the interactive invoicedesk command-line client.
//
// It wires configuration, the local settings database, the invoice API
// gateway and an interactive REPL. Typical flow: restore a persisted session
// if one exists, then execute user commands against the in-memory invoice
// workspace.
//
// Key features:
//   - Login / Register / Logout with a persisted session
//   - Add / Edit / Delete invoices backed by the remote API
//   - List, search, filter and summarize the invoice collection
//   - Light/dark theme toggle persisted across restarts
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
