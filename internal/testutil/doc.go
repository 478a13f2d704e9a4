// Package testutil provides fixtures shared by the journal, backup, CLI and
// dashboard tests: a fluent snapshot builder, deterministic ids and clocks,
// and stores that can be told to fail.
package testutil
