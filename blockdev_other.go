//go:build !linux

package devprop

// BlockDeviceSize is only implemented on Linux.
func BlockDeviceSize(fd int) (uint64, error) {
	return 0, ErrUnsupported
}

// BlockDevicePhysicalBlockSize is only implemented on Linux.
func BlockDevicePhysicalBlockSize(fd int) (int32, error) {
	return 0, ErrUnsupported
}

// BlockDeviceGeometry is only implemented on Linux.
func BlockDeviceGeometry(fd int) (Geometry, error) {
	return Geometry{}, ErrUnsupported
}
