// Package testutil provides deterministic data sets and tolerance assertions
// shared by the package tests.
package testutil
