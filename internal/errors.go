package internal

import "fmt"

// QuotaError represents a persistence write rejected by the underlying
// store. Callers keep serving from memory and surface a notification;
// the failure is never fatal.
type QuotaError struct {
	Scope Scope
	Key   string
	Err   error
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("storage write rejected [%s] %s: %v", e.Scope, e.Key, e.Err)
}

func (e *QuotaError) Unwrap() error {
	return e.Err
}

// FetchError represents a failed call to an external provider.
type FetchError struct {
	Provider string
	Op       string // "weather", "quote", "channel-stats", ...
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch error [%s] %s: %v", e.Provider, e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ValidationError represents user input rejected before persisting.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError represents errors opening or migrating the store itself.
// A missing or corrupt value is not a StorageError; reads treat those as
// absent.
type StorageError struct {
	Path string
	Op   string // "open", "migrate"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
