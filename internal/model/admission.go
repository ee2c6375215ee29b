package model

// Package model contains domain models/data structures.
// Keep it free of I/O and framework types; no business logic here.

import "io"

// Default admission constraints shared across handler, service, and docs.
const (
	// MaxFileSizeBytes is the ceiling applied to both the declared and the
	// probed upload size.
	MaxFileSizeBytes = int64(20 * 1024 * 1024) // 20 MiB
)

// DefaultAllowedExtensions lists the accepted filename suffixes,
// lower-cased and dot-prefixed.
var DefaultAllowedExtensions = []string{".txt", ".log", ".logfile", ".data"}

// AdmissionPolicy is the process-wide upload admission configuration.
// It is built once at startup and never mutated, so unsynchronized
// concurrent reads are safe.
type AdmissionPolicy struct {
	MaxBytes          int64
	AllowedExtensions []string
}

// DefaultAdmissionPolicy returns the fixed policy the service runs with.
func DefaultAdmissionPolicy() AdmissionPolicy {
	return AdmissionPolicy{
		MaxBytes:          MaxFileSizeBytes,
		AllowedExtensions: DefaultAllowedExtensions,
	}
}

// Source is the streamable byte source of one upload. It must support
// sequential reads, seeking, and closing; multipart.File satisfies it.
type Source interface {
	io.Reader
	io.Seeker
	io.Closer
}

// UploadRequest carries one inbound file stream plus its declared metadata.
// It is scoped to a single request lifecycle and never retained.
//
// DeclaredSize is the transport-level length hint in bytes; a negative value
// means the transport provided none. It is untrusted and only ever used as a
// fast reject — the probed length is authoritative.
type UploadRequest struct {
	Filename     string
	DeclaredSize int64
	Body         Source
}

// RejectionKind enumerates the admission rejection causes. Exhaustive.
type RejectionKind string

const (
	RejectionInvalidExtension RejectionKind = "INVALID_EXTENSION"
	RejectionDeclaredTooLarge RejectionKind = "DECLARED_TOO_LARGE"
	RejectionActualTooLarge   RejectionKind = "ACTUAL_TOO_LARGE"
)

// AdmissionResult is the outcome of one upload admission. Rejections are
// reported here as data, not as errors; errors are reserved for I/O faults.
//
// When Admitted is true, SizeBytes holds the probed length and Rejection is
// empty. When false, Rejection names the cause and Detail carries a
// human-readable message naming the violated limit or allowed set.
type AdmissionResult struct {
	Admitted  bool          `json:"admitted"`
	Filename  string        `json:"filename"`
	SizeBytes int64         `json:"size_bytes"`
	Rejection RejectionKind `json:"rejection,omitempty"`
	Detail    string        `json:"detail,omitempty"`
}
