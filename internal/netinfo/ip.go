// Package netinfo provides small, stateless lookups over addresses and
// well-known ports.
package netinfo

import (
	"strconv"
	"strings"
)

// IsPrivate reports whether a dotted-quad IPv4 address falls in one of the
// RFC 1918 ranges (10/8, 172.16/12, 192.168/16). Anything that is not
// exactly four numeric octets is classified as not private.
func IsPrivate(address string) bool {
	parts := strings.Split(address, ".")
	if len(parts) != 4 {
		return false
	}

	octets := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return false
		}
		octets[i] = n
	}

	switch octets[0] {
	case 10:
		return true
	case 172:
		return octets[1] >= 16 && octets[1] <= 31
	case 192:
		return octets[1] == 168
	}
	return false
}

// StripPort removes a trailing ":port" suffix from an address as it appears
// in connection-tracking records ("192.168.1.5:1234").
func StripPort(address string) string {
	if i := strings.IndexByte(address, ':'); i >= 0 {
		return address[:i]
	}
	return address
}
