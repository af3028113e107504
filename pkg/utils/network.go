// ===== pkg/utils/network.go =====
package utils

import (
	"net"
)

// ParseIP parses a textual IPv4 or IPv6 address.
// Zoned IPv6 addresses and IPv4 octets with leading zeros are rejected.
func ParseIP(s string) (net.IP, bool) {
	ip := net.ParseIP(s)
	return ip, ip != nil
}

// IsIPv4 reports whether ip can be represented as a 4-byte address,
// which includes IPv4-mapped IPv6 addresses
func IsIPv4(ip net.IP) bool {
	return ip.To4() != nil
}
