package devprop

import (
	"encoding/hex"
	"net"
	"strings"
)

// macHexLen is the number of hex digits in a 48-bit MAC address.
const macHexLen = 12

// MAC is a 48-bit hardware address.
type MAC [6]byte

// String returns the address in lower-case, colon-delimited form.
func (m MAC) String() string {
	return m.HardwareAddr().String()
}

// HardwareAddr converts m to a [net.HardwareAddr].
func (m MAC) HardwareAddr() net.HardwareAddr {
	return net.HardwareAddr(m[:])
}

// ParseMAC parses a colon-delimited hexadecimal MAC address such as
// "00:11:22:33:44:55". Every colon is removed first, so "001122334455" is
// accepted too. The remainder must be exactly 12 hex digits.
func ParseMAC(s string) (MAC, error) {
	var mac MAC

	digits := strings.ReplaceAll(s, ":", "")
	if len(digits) != macHexLen {
		return mac, &ParseError{Input: s, Err: ErrInvalidLength}
	}

	if _, err := hex.Decode(mac[:], []byte(digits)); err != nil {
		return MAC{}, &ParseError{Input: s, Err: ErrInvalidHex}
	}

	return mac, nil
}
