// Package testutil provides testing utilities and helpers.
//
// This package is internal and should not be imported by external code.
package testutil
