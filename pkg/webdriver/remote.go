package webdriver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/net/http/httpproxy"
	"golang.org/x/net/proxy"

	"github.com/selebrow/steward/internal/common/client"
	"github.com/selebrow/steward/internal/proxy/dialer"
	"github.com/selebrow/steward/pkg/capabilities"
	"github.com/selebrow/steward/pkg/models"
)

type (
	// Client remote control capability of a single browser session
	Client interface {
		SessionID() string
		Execute(ctx context.Context, cmd Command) (any, error)
		Close(ctx context.Context) error
		Quit(ctx context.Context) error
	}

	// Factory creates browser sessions on the remote end
	Factory interface {
		Create(
			ctx context.Context,
			serverURL string,
			caps *capabilities.Set,
			connectTimeout, requestTimeout time.Duration,
		) (Client, error)
	}

	HTTPClientFunc func(connectTimeout, requestTimeout time.Duration) (client.HTTPClient, error)
)

type RemoteFactory struct {
	newClient HTTPClientFunc
	l         *zap.SugaredLogger
}

// NewRemoteFactory hubProxy is optional SOCKS5 proxy used to reach the hub,
// otherwise HTTP proxy settings are taken from the environment
func NewRemoteFactory(hubProxy *url.URL, l *zap.Logger) *RemoteFactory {
	return NewRemoteFactoryWithClient(newHTTPClientFunc(hubProxy), l)
}

func NewRemoteFactoryWithClient(newClient HTTPClientFunc, l *zap.Logger) *RemoteFactory {
	return &RemoteFactory{
		newClient: newClient,
		l:         l.Sugar(),
	}
}

func (f *RemoteFactory) Create(
	ctx context.Context,
	serverURL string,
	caps *capabilities.Set,
	connectTimeout, requestTimeout time.Duration,
) (Client, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid server URL")
	}

	hc, err := f.newClient(connectTimeout, requestTimeout)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize HTTP client")
	}

	c := &RemoteClient{
		hc:   hc,
		base: u,
	}

	req := models.NewNewSessionRequest(caps, caps.W3C())
	resp, err := c.do(ctx, NewSession, commands[NewSession], req)
	if err != nil {
		return nil, err
	}

	id, err := extractSessionID(resp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse create session response")
	}
	c.id = id

	f.l.With(zap.String("session_id", id), zap.String("url", u.Redacted())).Debug("remote session created")
	return c, nil
}

type RemoteClient struct {
	id   string
	hc   client.HTTPClient
	base *url.URL
}

func (c *RemoteClient) SessionID() string {
	return c.id
}

func (c *RemoteClient) Execute(ctx context.Context, cmd Command) (any, error) {
	ep, ok := lookupEndpoint(cmd.Name)
	if !ok {
		return nil, errors.Errorf("unknown command %q", cmd.Name)
	}

	var body any
	if ep.method == http.MethodPost {
		params := cmd.Params
		if params == nil {
			params = map[string]any{}
		}
		body = params
	}

	resp, err := c.do(ctx, cmd.Name, ep, body)
	if err != nil {
		return nil, err
	}
	return resp["value"], nil
}

func (c *RemoteClient) Close(ctx context.Context) error {
	_, err := c.Execute(ctx, NewCommand(CloseWindow, nil))
	return err
}

func (c *RemoteClient) Quit(ctx context.Context) error {
	_, err := c.Execute(ctx, NewCommand(Quit, nil))
	return err
}

func (c *RemoteClient) do(ctx context.Context, name string, ep endpoint, body any) (map[string]any, error) {
	u := *c.base
	u.Path = strings.TrimSuffix(u.Path, "/") + ep.resolve(c.id)

	var reqBody io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode %s request", name)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, ep.method, u.String(), reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, models.WrapTimeoutErr(err, name+" request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s response", name)
	}

	var res map[string]any
	decodeErr := json.Unmarshal(raw, &res)

	if resp.StatusCode >= http.StatusBadRequest || jsonWireStatus(res) != 0 {
		return nil, newRemoteError(name, resp.StatusCode, res, raw)
	}
	if decodeErr != nil && len(raw) > 0 {
		return nil, errors.Wrapf(decodeErr, "failed to decode %s response", name)
	}
	return res, nil
}

func newRemoteError(name string, code int, resp map[string]any, raw []byte) *RemoteError {
	e := &RemoteError{
		Command:    name,
		StatusCode: code,
	}
	if value, ok := resp["value"].(map[string]any); ok {
		e.ErrorText, _ = value["error"].(string)
		e.Message, _ = value["message"].(string)
	}
	if e.Message == "" {
		e.Message = strings.TrimSpace(string(raw))
	}
	e.Kind = Classify(e.Message)
	return e
}

// jsonWireStatus legacy remote ends may report failures with HTTP 200 and non-zero status
func jsonWireStatus(resp map[string]any) int {
	status, ok := resp["status"].(float64)
	if !ok {
		return 0
	}
	return int(status)
}

func extractSessionID(resp map[string]any) (string, error) {
	id, ok := resp["sessionId"]
	if ok {
		sess, ok := id.(string)
		if !ok {
			return "", errors.New("failed to cast sessionId to string")
		}

		return sess, nil
	}

	value, ok := resp["value"]
	if !ok {
		return "", errors.New("wrong response structure")
	}

	sessIDMap, ok := value.(map[string]any)
	if !ok {
		return "", errors.New("failed to cast value to map")
	}

	id, ok = sessIDMap["sessionId"]
	if !ok {
		return "", errors.New("wrong response structure")
	}

	sess, ok := id.(string)
	if !ok {
		return "", errors.New("failed to cast sessionId to string")
	}

	return sess, nil
}

func newHTTPClientFunc(hubProxy *url.URL) HTTPClientFunc {
	return func(connectTimeout, requestTimeout time.Duration) (client.HTTPClient, error) {
		netDialer := &net.Dialer{Timeout: connectTimeout}

		//nolint:errcheck // not going to fail
		transport := &http.Transport{
			DialContext:           netDialer.DialContext,
			MaxIdleConns:          http.DefaultTransport.(*http.Transport).MaxIdleConns,
			IdleConnTimeout:       http.DefaultTransport.(*http.Transport).IdleConnTimeout,
			TLSHandshakeTimeout:   http.DefaultTransport.(*http.Transport).TLSHandshakeTimeout,
			ExpectContinueTimeout: http.DefaultTransport.(*http.Transport).ExpectContinueTimeout,
		}

		if hubProxy != nil {
			d, err := proxy.FromURL(hubProxy, netDialer)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to initialize dialer for proxy %s", hubProxy.Redacted())
			}
			cd, ok := d.(proxy.ContextDialer)
			if !ok {
				return nil, errors.Errorf("proxy %s dialer does not support context", hubProxy.Redacted())
			}
			// NO_PROXY rules still apply to hubs reached through the proxy
			rules := httpproxy.Config{
				HTTPProxy:  hubProxy.String(),
				HTTPSProxy: hubProxy.String(),
				NoProxy:    httpproxy.FromEnvironment().NoProxy,
			}
			transport.DialContext = dialer.NewBypassDialer(cd, netDialer, rules.ProxyFunc()).DialContext
		} else {
			proxyFunc := httpproxy.FromEnvironment().ProxyFunc()
			transport.Proxy = func(req *http.Request) (*url.URL, error) {
				return proxyFunc(req.URL)
			}
		}

		return &http.Client{
			Transport: transport,
			Timeout:   requestTimeout,
		}, nil
	}
}
