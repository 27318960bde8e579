package kmatrix

// Test-only exposure of private helpers.

// CheckOnShell exposes checkOnShell for boundary tests that inject a
// contrived mesh containing the on-shell momentum.
var CheckOnShell = checkOnShell
