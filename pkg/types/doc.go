// Package types defines the zoo entity model: animal and staff variants with
// their enumerated discriminants, the Zoo collection, the Registry storage
// interface, and the standard error types shared by backends and the CLI.
package types
