package types

import (
	"fmt"
	"strconv"
	"strings"
)

// LoopbackAddress is the fallback used when no outbound address can be determined.
const LoopbackAddress Address = "127.0.0.1"

// Address is a dotted-quad IPv4 address (e.g., "192.168.1.10").
type Address string

// ParseAddress validates s as exactly four decimal octets in the range 0-255.
func ParseAddress(s string) (Address, error) {
	if _, err := parseOctets(s); err != nil {
		return "", err
	}
	return Address(s), nil
}

// String returns the dotted-quad form.
func (a Address) String() string {
	return string(a)
}

// Octets returns the four octets of the address.
func (a Address) Octets() ([4]byte, error) {
	return parseOctets(string(a))
}

// WithLastOctet returns the address with its last octet replaced by octet.
func (a Address) WithLastOctet(octet int) (Address, error) {
	parts, err := parseOctets(string(a))
	if err != nil {
		return "", err
	}
	if octet < 0 || octet > 255 {
		return "", fmt.Errorf("octet %d out of range 0-255", octet)
	}
	return Address(fmt.Sprintf("%d.%d.%d.%d", parts[0], parts[1], parts[2], octet)), nil
}

func parseOctets(s string) ([4]byte, error) {
	var out [4]byte

	fields := strings.Split(s, ".")
	if len(fields) != 4 {
		return out, fmt.Errorf("invalid IPv4 address %q: expected 4 octets, got %d", s, len(fields))
	}

	for i, field := range fields {
		if field == "" || len(field) > 3 {
			return out, fmt.Errorf("invalid IPv4 address %q: bad octet %q", s, field)
		}
		for _, r := range field {
			if r < '0' || r > '9' {
				return out, fmt.Errorf("invalid IPv4 address %q: bad octet %q", s, field)
			}
		}
		n, err := strconv.Atoi(field)
		if err != nil || n > 255 {
			return out, fmt.Errorf("invalid IPv4 address %q: octet %q out of range", s, field)
		}
		out[i] = byte(n)
	}

	return out, nil
}
