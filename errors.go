package devprop

import (
	"errors"
	"fmt"
	"syscall"
)

// Sentinel errors wrapped by the struct errors below and recorded in
// [Diagnostics.Skipped].
var (
	// ErrInvalidLength is returned by [ParseMAC] when the input does not hold
	// exactly 12 hex digits once colons are removed.
	ErrInvalidLength = errors.New("invalid MAC address length")

	// ErrInvalidHex is returned by [ParseMAC] when the input contains a
	// character that is not a hex digit.
	ErrInvalidHex = errors.New("invalid hex digit in MAC address")

	// ErrEmptyValue is returned when an attribute file contains no bytes.
	ErrEmptyValue = errors.New("empty value returned")

	// ErrInvalidUTF8 is returned when an attribute file is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("attribute is not valid UTF-8")

	// ErrNoName is recorded when a directory entry has no usable file name.
	ErrNoName = errors.New("directory entry has no file name")

	// ErrNotNetworkDevice is recorded when an entry under class/net does not
	// resolve to a device directory.
	ErrNotNetworkDevice = errors.New("not a network device directory")

	// ErrUnsupported is returned by block device queries on platforms without
	// Linux block ioctls.
	ErrUnsupported = errors.New("block device queries are not supported on this platform")
)

// ErrorKind classifies a [PropertyError].
type ErrorKind int

const (
	// KindIO covers failed open, read and directory listing operations.
	KindIO ErrorKind = iota
	// KindEncoding means the attribute content was not valid UTF-8.
	KindEncoding
	// KindParse means the attribute content could not be parsed.
	KindParse
)

// String returns the lower-case name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindEncoding:
		return "encoding"
	case KindParse:
		return "parse"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseError records a malformed MAC address.
// Use [errors.As] to extract the offending input from wrapped errors.
type ParseError struct {
	Input string // text handed to ParseMAC
	Err   error  // ErrInvalidLength or ErrInvalidHex
}

// Error returns a human-readable description of the parse failure.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse MAC address %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// PropertyError records a failure while reading a device property from sysfs.
type PropertyError struct {
	Path string    // sysfs file or directory involved
	Kind ErrorKind // failure stage
	Err  error     // underlying error
}

// Error returns a human-readable description of the property failure.
func (e *PropertyError) Error() string {
	return fmt.Sprintf("%s error on %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PropertyError) Unwrap() error {
	return e.Err
}

// DeviceControlError records a failed ioctl. Errno is the raw code returned by
// the kernel, e.g. ENOTTY for a descriptor that is not a block device.
type DeviceControlError struct {
	Request string        // ioctl name, e.g. "BLKGETSIZE64"
	Errno   syscall.Errno // kernel error code
}

// Error returns a human-readable description of the ioctl failure.
func (e *DeviceControlError) Error() string {
	return fmt.Sprintf("ioctl %s failed: %v", e.Request, e.Errno)
}

// Unwrap returns the errno so callers can match it with [errors.Is].
func (e *DeviceControlError) Unwrap() error {
	return e.Errno
}
