// Package operations contains the internal implementations of object service operations.
// Each sub-package drives one protocol exchange against an objectapi.ObjectAPI.
package operations
