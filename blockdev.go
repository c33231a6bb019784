package devprop

// Block device ioctl names, used in [DeviceControlError.Request].
const (
	// requestGetSize64 is BLKGETSIZE64, _IOR(0x12, 114, size_t): device size in bytes.
	requestGetSize64 = "BLKGETSIZE64"

	// requestGetPhysicalBlockSize is BLKPBSZGET, _IO(0x12, 123): physical block size.
	requestGetPhysicalBlockSize = "BLKPBSZGET"
)

// Geometry holds the capacity facts of a block device.
type Geometry struct {
	Size              uint64 // total size in bytes
	PhysicalBlockSize int32  // smallest unit the hardware reads or writes
}

// Blocks returns the number of physical blocks on the device, or 0 when the
// block size is unknown.
func (g Geometry) Blocks() uint64 {
	if g.PhysicalBlockSize <= 0 {
		return 0
	}

	return g.Size / uint64(g.PhysicalBlockSize)
}
