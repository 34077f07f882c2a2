package webdriver

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestNewHTTPClientFunc(t *testing.T) {
	g := NewWithT(t)

	c, err := newHTTPClientFunc(nil)(time.Second, 3*time.Second)
	g.Expect(err).ToNot(HaveOccurred())
	hc := c.(*http.Client)
	g.Expect(hc.Timeout).To(Equal(3 * time.Second))
	tr := hc.Transport.(*http.Transport)
	g.Expect(tr.Proxy).ToNot(BeNil())
	g.Expect(tr.DialContext).ToNot(BeNil())

	socks, _ := url.Parse("socks5://127.0.0.1:1080")
	c, err = newHTTPClientFunc(socks)(time.Second, time.Minute)
	g.Expect(err).ToNot(HaveOccurred())
	tr = c.(*http.Client).Transport.(*http.Transport)
	g.Expect(tr.Proxy).To(BeNil())
	g.Expect(tr.DialContext).ToNot(BeNil())

	bad, _ := url.Parse("ftp://127.0.0.1:21")
	_, err = newHTTPClientFunc(bad)(time.Second, time.Minute)
	g.Expect(err).To(MatchError(ContainSubstring("failed to initialize dialer for proxy ftp://127.0.0.1:21")))
}

func TestExtractSessionID(t *testing.T) {
	g := NewWithT(t)

	id, err := extractSessionID(map[string]any{"sessionId": "legacy", "status": 0.0})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(id).To(Equal("legacy"))

	id, err = extractSessionID(map[string]any{"value": map[string]any{"sessionId": "w3c"}})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(id).To(Equal("w3c"))

	_, err = extractSessionID(map[string]any{"value": "oops"})
	g.Expect(err).To(MatchError("failed to cast value to map"))

	_, err = extractSessionID(map[string]any{})
	g.Expect(err).To(MatchError("wrong response structure"))
}

func TestClassify(t *testing.T) {
	g := NewWithT(t)
	g.Expect(Classify("Unable to bind to locking port 7054 within 45000 ms")).To(Equal(KindLockingPort))
	g.Expect(Classify("Error forwarding the new session Empty pool of VM for setup")).To(Equal(KindNodeUnavailable))
	g.Expect(Classify("something else")).To(Equal(KindUnknown))
	g.Expect(KindOf(nil)).To(Equal(KindUnknown))
	g.Expect(KindLockingPort.String()).To(Equal("locking port"))
}
