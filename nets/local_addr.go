package nets

import (
	"net"
	"net/netip"
)

// IsLocalAddr reports loopback and private addresses, which bypass the proxy.
type IsLocalAddr func(addr string) bool

func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) bool {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		if host == "localhost" {
			return true
		}
		ip, err := netip.ParseAddr(host)
		if err != nil {
			// names are resolved by the proxy
			return false
		}
		return ip.IsLoopback() || ip.IsPrivate()
	}
}
