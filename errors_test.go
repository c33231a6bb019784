package devprop

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"
)

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Input: "00:11", Err: ErrInvalidLength}

	want := `failed to parse MAC address "00:11": invalid MAC address length`
	if err.Error() != want {
		t.Errorf("ParseError.Error() = %q, want %q", err.Error(), want)
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	err := &ParseError{Input: "zz", Err: ErrInvalidHex}

	if err.Unwrap() != ErrInvalidHex {
		t.Error("ParseError.Unwrap() did not return inner error")
	}
}

func TestPropertyErrorMessage(t *testing.T) {
	err := &PropertyError{Path: "/sys/class/net/eth0/address", Kind: KindEncoding, Err: ErrInvalidUTF8}

	want := "encoding error on /sys/class/net/eth0/address: attribute is not valid UTF-8"
	if err.Error() != want {
		t.Errorf("PropertyError.Error() = %q, want %q", err.Error(), want)
	}
}

func TestPropertyErrorAs(t *testing.T) {
	inner := &fs.PathError{Op: "open", Path: "/sys/class/net/eth0/address", Err: fs.ErrNotExist}
	err := fmt.Errorf("reading eth0: %w", &PropertyError{Path: inner.Path, Kind: KindIO, Err: inner})

	var propErr *PropertyError
	if !errors.As(err, &propErr) {
		t.Fatal("errors.As() should find PropertyError in wrapped chain")
	}
	if propErr.Kind != KindIO {
		t.Errorf("PropertyError.Kind = %v, want %v", propErr.Kind, KindIO)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is() should find fs.ErrNotExist through PropertyError")
	}
}

// TestPropertyErrorWrapsParseError tests that parse failures stay inspectable
// as both error types.
func TestPropertyErrorWrapsParseError(t *testing.T) {
	err := error(&PropertyError{
		Path: "address",
		Kind: KindParse,
		Err:  &ParseError{Input: "00", Err: ErrInvalidLength},
	})

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatal("errors.As() should find ParseError inside PropertyError")
	}
	if !errors.Is(err, ErrInvalidLength) {
		t.Error("errors.Is() should find ErrInvalidLength")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindIO, "io"},
		{KindEncoding, "encoding"},
		{KindParse, "parse"},
		{ErrorKind(42), "kind(42)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestDeviceControlErrorMessage(t *testing.T) {
	err := &DeviceControlError{Request: "BLKGETSIZE64", Errno: syscall.ENOTTY}

	want := "ioctl BLKGETSIZE64 failed: " + syscall.ENOTTY.Error()
	if err.Error() != want {
		t.Errorf("DeviceControlError.Error() = %q, want %q", err.Error(), want)
	}
}

func TestDeviceControlErrorIs(t *testing.T) {
	err := fmt.Errorf("sizing /dev/sda: %w", &DeviceControlError{Request: "BLKPBSZGET", Errno: syscall.EACCES})

	if !errors.Is(err, syscall.EACCES) {
		t.Error("errors.Is() should match the wrapped errno")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is() should match fs.ErrPermission for EACCES")
	}

	var ctlErr *DeviceControlError
	if !errors.As(err, &ctlErr) {
		t.Fatal("errors.As() should find DeviceControlError in wrapped chain")
	}
	if ctlErr.Request != "BLKPBSZGET" {
		t.Errorf("DeviceControlError.Request = %q, want %q", ctlErr.Request, "BLKPBSZGET")
	}
}
