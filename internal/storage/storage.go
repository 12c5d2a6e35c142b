// Package storage implements the diary document stores and the Google
// Calendar publisher.
package storage

import "errors"

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("diary document not found")
