package devprop

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"
)

// NetworkDevice is one entry of the sysfs network device class directory.
type NetworkDevice struct {
	Name string // interface name, e.g. "eth0"
	Path string // device directory, e.g. "/sys/class/net/eth0"
}

// Address returns the device's MAC address as written by the kernel, without
// the trailing newline.
func (d NetworkDevice) Address() (string, error) {
	return ReadAddress(d.Path)
}

// HardwareAddr reads and parses the device's MAC address.
func (d NetworkDevice) HardwareAddr() (MAC, error) {
	addr, err := d.Address()
	if err != nil {
		return MAC{}, err
	}

	return parseAddress(filepath.Join(d.Path, addressAttr), addr)
}

// Diagnostics describes the outcome of the last enumeration.
// Use [Enumerator.Diagnostics] to retrieve it after [Enumerator.NetworkDevices]
// or [Enumerator.MACAddresses].
type Diagnostics struct {
	Skipped map[string]error // entry names that were skipped with their errors
	Listed  []string         // device names that were returned
}

// Enumerator lists network devices below a sysfs root.
// The zero configuration follows [SysfsRoot] on every call and logs nothing.
// Enumerator methods are safe for concurrent use after configuration is complete.
type Enumerator struct {
	logger      *slog.Logger
	diagnostics *Diagnostics
	root        string
	mu          sync.Mutex
	skipVirtual bool
}

// New creates an Enumerator with default settings.
func New() *Enumerator {
	return &Enumerator{}
}

// WithRoot pins the sysfs root instead of resolving it from the environment.
// An empty root restores the default behaviour.
func (e *Enumerator) WithRoot(root string) *Enumerator {
	e.root = root

	return e
}

// WithLogger sets an optional [*slog.Logger]. Skipped entries are logged at
// warn level and every include/exclude decision at debug level. A nil logger
// (the default) disables all logging.
func (e *Enumerator) WithLogger(logger *slog.Logger) *Enumerator {
	e.logger = logger

	return e
}

// WithoutVirtual excludes tunnels, bridges, container veths and other
// software interfaces whose addresses are not tied to hardware.
func (e *Enumerator) WithoutVirtual() *Enumerator {
	e.skipVirtual = true

	return e
}

// Root returns the sysfs root the next enumeration will read from.
func (e *Enumerator) Root() string {
	if e.root != "" {
		return e.root
	}

	return SysfsRoot()
}

// NetworkDevices lists the entries of <root>/class/net in directory order.
// The loopback device is never included. Entries that cannot be resolved are
// skipped and recorded in [Diagnostics]; only a failure to read the class
// directory itself is returned as an error.
func (e *Enumerator) NetworkDevices() ([]NetworkDevice, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.enumerate()
}

// MACAddresses returns the MAC address of every enumerated device. Devices
// whose address cannot be read are skipped and recorded in [Diagnostics].
func (e *Enumerator) MACAddresses() ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	devices, err := e.enumerate()
	if err != nil {
		return nil, err
	}

	addrs := make([]string, 0, len(devices))
	for _, d := range devices {
		addr, err := d.Address()
		if err != nil {
			e.skip(d.Name, err)
			e.diagnostics.Listed = slices.DeleteFunc(e.diagnostics.Listed, func(name string) bool {
				return name == d.Name
			})

			continue
		}

		e.logDebug("read MAC address", "device", d.Name, "mac", addr)
		addrs = append(addrs, addr)
	}

	return addrs, nil
}

// Diagnostics returns the outcome of the last enumeration, or nil if none
// has run yet.
func (e *Enumerator) Diagnostics() *Diagnostics {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.diagnostics
}

// enumerate does the work of NetworkDevices. The caller holds e.mu.
func (e *Enumerator) enumerate() ([]NetworkDevice, error) {
	dir := NetClassPath(e.Root())
	e.diagnostics = &Diagnostics{Skipped: make(map[string]error)}

	e.logDebug("listing network devices", "dir", dir)

	f, err := os.Open(dir)
	if err != nil {
		e.logWarn("could not open network class directory", "dir", dir, "error", err)

		return nil, &PropertyError{Path: dir, Kind: KindIO, Err: err}
	}
	defer f.Close()

	// (*os.File).ReadDir keeps directory order; os.ReadDir would sort.
	entries, err := f.ReadDir(-1)
	if err != nil {
		e.logWarn("could not list network class directory", "dir", dir, "error", err)

		return nil, &PropertyError{Path: dir, Kind: KindIO, Err: err}
	}

	var devices []NetworkDevice
	for _, entry := range entries {
		name := entry.Name()
		if !validDeviceName(name) {
			e.skip(filepath.Join(dir, name), ErrNoName)

			continue
		}

		if name == loopbackName {
			e.logDebug("skipping loopback device", "device", name)

			continue
		}

		path := filepath.Join(dir, name)

		// Entries are symlinks into /sys/devices; a device removed while we
		// iterate leaves a dangling link.
		info, err := os.Stat(path)
		if err != nil {
			e.skip(name, &PropertyError{Path: path, Kind: KindIO, Err: err})

			continue
		}

		if !info.IsDir() {
			e.skip(name, ErrNotNetworkDevice)

			continue
		}

		if e.skipVirtual && isVirtualInterface(name) {
			e.logDebug("skipping virtual interface", "device", name)

			continue
		}

		e.logDebug("including network device", "device", name)
		devices = append(devices, NetworkDevice{Name: name, Path: path})
		e.diagnostics.Listed = append(e.diagnostics.Listed, name)
	}

	return devices, nil
}

// skip records a per-entry failure. The caller holds e.mu.
func (e *Enumerator) skip(name string, err error) {
	e.diagnostics.Skipped[name] = err
	e.logWarn("skipping network device", "device", name, "error", err)
}

// logDebug logs at debug level if a logger is configured.
func (e *Enumerator) logDebug(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}

// logWarn logs at warn level if a logger is configured.
func (e *Enumerator) logWarn(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Warn(msg, args...)
	}
}

// ListNetworkDevices lists the network devices under [SysfsRoot], excluding
// loopback. It is shorthand for New().NetworkDevices().
func ListNetworkDevices() ([]NetworkDevice, error) {
	return New().NetworkDevices()
}

// ReadMAC returns the MAC address of the named device, read from
// <SysfsRoot>/class/net/<name>/address with the trailing newline removed.
func ReadMAC(name string) (string, error) {
	dir := NetClassPath(SysfsRoot())
	if !validDeviceName(name) {
		return "", &PropertyError{Path: dir, Kind: KindIO, Err: ErrNoName}
	}

	return ReadAddress(filepath.Join(dir, name))
}

// ReadMACAddr is [ReadMAC] followed by [ParseMAC].
func ReadMACAddr(name string) (MAC, error) {
	addr, err := ReadMAC(name)
	if err != nil {
		return MAC{}, err
	}

	return parseAddress(filepath.Join(NetClassPath(SysfsRoot()), name, addressAttr), addr)
}

// ReadAddress reads the address attribute of the device directory devicePath.
// The kernel terminates the value with a newline, which is removed. An empty
// file is reported as [ErrEmptyValue].
func ReadAddress(devicePath string) (string, error) {
	path := filepath.Join(devicePath, addressAttr)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &PropertyError{Path: path, Kind: KindIO, Err: err}
	}

	if len(data) == 0 {
		return "", &PropertyError{Path: path, Kind: KindIO, Err: ErrEmptyValue}
	}

	data = bytes.TrimSuffix(data, []byte{'\n'})
	if !utf8.Valid(data) {
		return "", &PropertyError{Path: path, Kind: KindEncoding, Err: ErrInvalidUTF8}
	}

	return string(data), nil
}

// SortDevices orders devices by name.
func SortDevices(devices []NetworkDevice) {
	slices.SortFunc(devices, func(a, b NetworkDevice) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// parseAddress parses addr read from path, tagging failures as KindParse.
func parseAddress(path, addr string) (MAC, error) {
	mac, err := ParseMAC(addr)
	if err != nil {
		return MAC{}, &PropertyError{Path: path, Kind: KindParse, Err: err}
	}

	return mac, nil
}

// validDeviceName reports whether name can be used as a single path element.
func validDeviceName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsRune(name, os.PathSeparator)
}
