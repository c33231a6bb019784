// Package devprop reads hardware properties of a Linux host: the network
// devices and MAC addresses exposed under sysfs, and the capacity of block
// devices queried through ioctls. It is meant as the lowest layer beneath
// licensing, identity, and storage provisioning code.
//
// # Sysfs Root
//
// All sysfs lookups start at [SysfsRoot], which is /sys unless the
// SYSFS_PATH environment variable holds a non-empty path. The variable is read
// on every call, so tests can point the package at a synthetic tree:
//
//	t.Setenv(devprop.SysfsPathEnv, t.TempDir())
//
// # Network Devices
//
// [ListNetworkDevices] lists <root>/class/net in directory order. The
// loopback device is never included. If the class directory itself cannot be
// read the call fails; a single entry that cannot be resolved is skipped.
//
//	devices, err := devprop.ListNetworkDevices()
//	for _, d := range devices {
//		mac, err := d.HardwareAddr()
//		...
//	}
//
// An [Enumerator] adds a pinned root, an optional [*slog.Logger] and a filter
// for virtual interfaces, and records skipped entries in [Diagnostics]:
//
//	e := devprop.New().WithLogger(logger).WithoutVirtual()
//	addrs, err := e.MACAddresses()
//	fmt.Println("Skipped:", e.Diagnostics().Skipped)
//
// # MAC Addresses
//
// [ReadMAC] returns the address attribute of a named device as text and
// [ReadMACAddr] parses it into a [MAC]. [ParseMAC] accepts exactly 12 hex
// digits once colons are removed.
//
// # Block Devices
//
// [BlockDeviceSize] and [BlockDevicePhysicalBlockSize] issue BLKGETSIZE64 and
// BLKPBSZGET against a descriptor owned by the caller:
//
//	f, err := os.Open("/dev/sda")
//	...
//	size, err := devprop.BlockDeviceSize(int(f.Fd()))
//
// A failed ioctl is returned as a [*DeviceControlError] that unwraps to the
// kernel errno. These queries are only available on Linux; elsewhere they
// return [ErrUnsupported].
//
// # Errors
//
// Sysfs failures are reported as [*PropertyError] with an [ErrorKind] of
// [KindIO], [KindEncoding] or [KindParse]. Use [errors.Is] and [errors.As] to
// inspect them.
package devprop
