//go:build linux

package devprop

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/unix"
)

// BLKGETSIZE64 writes a u64 and BLKPBSZGET an unsigned int. Both arrays below
// fail to compile if the Go output buffers drift from those widths.
var (
	_ [8 - unsafe.Sizeof(uint64(0))]struct{}
	_ [unsafe.Sizeof(uint64(0)) - 8]struct{}
	_ [4 - unsafe.Sizeof(uint32(0))]struct{}
	_ [unsafe.Sizeof(uint32(0)) - 4]struct{}
)

// BlockDeviceSize returns the size in bytes of the block device open on fd.
// The descriptor is borrowed: it is neither closed nor duplicated. Calls
// interrupted by a signal are retried; any other failure is returned as a
// [*DeviceControlError].
func BlockDeviceSize(fd int) (uint64, error) {
	var size uint64

	for {
		_, _, errno := unix.Syscall(
			unix.SYS_IOCTL,
			uintptr(fd),
			uintptr(unix.BLKGETSIZE64),
			uintptr(unsafe.Pointer(&size)),
		)
		switch errno {
		case 0:
			return size, nil
		case unix.EINTR:
			continue
		default:
			return 0, &DeviceControlError{Request: requestGetSize64, Errno: errno}
		}
	}
}

// BlockDevicePhysicalBlockSize returns the physical block size in bytes of the
// block device open on fd. It follows the same descriptor and retry rules as
// [BlockDeviceSize].
func BlockDevicePhysicalBlockSize(fd int) (int32, error) {
	for {
		size, err := unix.IoctlGetUint32(fd, unix.BLKPBSZGET)
		if err == nil {
			return int32(size), nil
		}

		var errno unix.Errno
		if !errors.As(err, &errno) {
			// IoctlGetUint32 only returns Errno values.
			errno = unix.EINVAL
		}

		if errno == unix.EINTR {
			continue
		}

		return 0, &DeviceControlError{Request: requestGetPhysicalBlockSize, Errno: errno}
	}
}

// BlockDeviceGeometry queries both the size and the physical block size of
// the block device open on fd.
func BlockDeviceGeometry(fd int) (Geometry, error) {
	size, err := BlockDeviceSize(fd)
	if err != nil {
		return Geometry{}, err
	}

	blockSize, err := BlockDevicePhysicalBlockSize(fd)
	if err != nil {
		return Geometry{}, err
	}

	return Geometry{Size: size, PhysicalBlockSize: blockSize}, nil
}
