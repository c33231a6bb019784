package devprop

import (
	"os"
	"path/filepath"
)

const (
	// SysfsPathEnv names the environment variable that overrides the sysfs
	// mount point.
	SysfsPathEnv = "SYSFS_PATH"

	// DefaultSysfsRoot is used when SysfsPathEnv is unset or empty.
	DefaultSysfsRoot = "/sys"

	// netClassDir is the network device class directory relative to the sysfs root.
	netClassDir = "class/net"

	// addressAttr is the per-device attribute holding the MAC address.
	addressAttr = "address"
)

// SysfsRoot returns the sysfs mount point. The environment is consulted on
// every call so tests can change it between cases. An empty value counts as
// unset.
func SysfsRoot() string {
	if root := os.Getenv(SysfsPathEnv); root != "" {
		return root
	}

	return DefaultSysfsRoot
}

// NetClassPath returns the network device class directory beneath root.
func NetClassPath(root string) string {
	return filepath.Join(root, netClassDir)
}
