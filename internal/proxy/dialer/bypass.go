package dialer

import (
	"context"
	"net"
	"net/url"

	"golang.org/x/net/proxy"
)

// BypassDialer connects through the proxied dialer unless proxy rules exclude the address
type BypassDialer struct {
	proxied   proxy.ContextDialer
	direct    proxy.ContextDialer
	proxyFunc func(*url.URL) (*url.URL, error)
}

func NewBypassDialer(
	proxied proxy.ContextDialer,
	direct proxy.ContextDialer,
	proxyFunc func(*url.URL) (*url.URL, error),
) *BypassDialer {
	return &BypassDialer{
		proxied:   proxied,
		direct:    direct,
		proxyFunc: proxyFunc,
	}
}

func (d *BypassDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	dialer, err := d.dialerFor(address)
	if err != nil {
		return nil, err
	}
	return dialer.DialContext(ctx, network, address)
}

func (d *BypassDialer) Dial(network, address string) (net.Conn, error) {
	return d.DialContext(context.Background(), network, address)
}

func (d *BypassDialer) dialerFor(address string) (proxy.ContextDialer, error) {
	// only the host matters for the rules, scheme selects HTTPS proxy setting
	u, err := url.Parse("https://" + address)
	if err != nil {
		return nil, err
	}

	proxyURL, err := d.proxyFunc(u)
	if err != nil {
		return nil, err
	}
	if proxyURL == nil {
		return d.direct, nil
	}
	return d.proxied, nil
}
