// Package types defines the Catalog and Store interfaces, the column and row
// model, and the standard error types shared by the registrar backend, the
// editor state machine, and the CLI.
package types
