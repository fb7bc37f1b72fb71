package uuid

import (
	"crypto/md5"
	"io"
	"net"
	"os"
	"runtime"
)

// NodeSource tells how an Allocator obtained its node identifier.
type NodeSource uint8

const (
	_              NodeSource = iota
	NodeHardware              // IEEE 802 address of a network interface
	NodeRandom                // hashed substitute with the multicast bit set
	NodeConfigured            // pinned with WithNode
)

// String returns the lower-case name of the node source.
func (s NodeSource) String() string {
	switch s {
	case NodeHardware:
		return "hardware"
	case NodeRandom:
		return "random"
	case NodeConfigured:
		return "configured"
	default:
		return "unknown"
	}
}

// interfaces is swapped out in tests.
var interfaces = net.Interfaces

// resolveNode returns a hardware address if one is available and falls back
// to a pseudo-random node otherwise (RFC 4122 section 4.5).
func resolveNode() ([6]byte, NodeSource) {
	if node, ok := hardwareNode(); ok {
		return node, NodeHardware
	}
	return randomNode(), NodeRandom
}

// hardwareNode returns the first non-loopback interface address that is at
// least 6 bytes long and not all zero.
func hardwareNode() ([6]byte, bool) {
	var node [6]byte
	ifs, err := interfaces()
	if err != nil {
		return node, false
	}
	for _, ifi := range ifs {
		if ifi.Flags&net.FlagLoopback != 0 || len(ifi.HardwareAddr) < 6 {
			continue
		}
		copy(node[:], ifi.HardwareAddr)
		if node != ([6]byte{}) {
			return node, true
		}
	}
	return node, false
}

// randomNode derives a node from an MD5 digest of strings that identify the
// platform and host. The multicast bit, the least significant bit of the
// first octet, is set so the result never equals a real card address.
func randomNode() [6]byte {
	host, _ := os.Hostname()

	h := md5.New()
	for _, s := range []string{runtime.Compiler, runtime.Version(), runtime.GOARCH, runtime.GOOS, host} {
		io.WriteString(h, s)
	}
	sum := h.Sum(nil)

	var node [6]byte
	copy(node[:], sum[:6])
	node[0] |= 0x01
	return node
}

// formatNode renders a node as colon-separated hex octets.
func formatNode(node [6]byte) string {
	return net.HardwareAddr(node[:]).String()
}
