package devprop

import "strings"

// loopbackName is the Linux loopback interface. It has no hardware address
// and is never reported.
const loopbackName = "lo"

// virtualInterfacePrefixes lists interface name prefixes that represent
// virtual, VPN, bridge, or ephemeral interfaces. Their addresses are
// generated by software and change when it is reinstalled or restarted.
var virtualInterfacePrefixes = []string{
	// VPN and tunnel interfaces
	"tun", "tap", "ipsec", "ppp", "gre", "sit", "ip6tnl",
	// Docker, CNI and container bridges
	"docker", "br-", "veth", "cni", "flannel", "cali", "vxlan",
	// Virtual bridges and switches
	"virbr", "vnet", "vmnet", "ovs-",
	// Kernel pseudo devices
	"dummy", "ifb",
	// WireGuard
	"wg",
	// VirtualBox
	"vboxnet",
}

// isVirtualInterface reports whether name matches a known virtual, VPN, or
// bridge prefix.
func isVirtualInterface(name string) bool {
	lower := strings.ToLower(name)
	for _, prefix := range virtualInterfacePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}

	return false
}
