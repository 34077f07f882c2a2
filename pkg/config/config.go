package config

import (
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ConfigPrefix = "ST"

const (
	DefaultServerURL   = "http://localhost:4444/wd/hub"
	DefaultBrowserName = "firefox"

	serverURL       = "server-url"
	browserName     = "browser-name"
	connectTimeout  = "connect-timeout"
	requestTimeout  = "request-timeout"
	createAttempts  = "create-attempts"
	createBackoff   = "create-backoff"
	capabilitiesURI = "capabilities-uri"
	fallbackCapsURI = "fallback-capabilities-uri"
	hubProxy        = "hub-proxy"
	suiteFile       = "suite-file"
	metricsListen   = "metrics-listen"
	eventBufferSize = "event-buffer-size"
	shutdownTimeout = "shutdown-timeout"
)

var (
	// set at build time
	DefaultFallbackCapabilitiesURI = ""

	envReplacer = strings.NewReplacer("-", "_")

	validServerSchemes = []string{"http", "https"}

	genLineage = uuid.NewString
)

type (
	LaunchConfig interface {
		ServerURL() string
		BrowserName() string
		ConnectTimeout() time.Duration
		RequestTimeout() time.Duration
		CreateAttempts() int
		CreateBackoff() time.Duration
		HubProxy() *url.URL
	}

	CapabilitiesConfig interface {
		CapabilitiesURI() []string
	}

	CIConfig interface {
		JobID() string
		ProjectNamespace() string
		ProjectName() string
	}

	RunnerConfig interface {
		SuiteFile() string
		MetricsListen() string
		EventBufferSize() int
		ShutdownTimeout() time.Duration
	}

	Config interface {
		LaunchConfig
		CapabilitiesConfig
		CIConfig
		RunnerConfig
		Lineage() string
	}

	ConfigViper struct {
		v                *viper.Viper
		jobID            string
		projectNamespace string
		projectName      string
		hubProxy         *url.URL
		lineage          string
	}
)

func NewConfig(v *viper.Viper, f *pflag.FlagSet) (*ConfigViper, error) {
	if err := v.BindPFlags(f); err != nil {
		return nil, err
	}
	if err := bindEnvVars(v); err != nil {
		return nil, err
	}

	if err := validateServerURL(v.GetString(serverURL)); err != nil {
		return nil, err
	}

	if strings.TrimSpace(v.GetString(browserName)) == "" {
		return nil, errors.New("browser name must not be empty")
	}

	if n := v.GetInt(createAttempts); n < 1 {
		return nil, errors.Errorf("invalid number of create attempts specified (%d), at least 1 is required", n)
	}

	var proxyURL *url.URL
	if p := v.GetString(hubProxy); p != "" {
		u, err := url.Parse(p)
		if err != nil {
			return nil, errors.Wrap(err, "invalid hub proxy URL")
		}
		proxyURL = u
	}

	return &ConfigViper{
		v:                v,
		jobID:            os.Getenv("CI_JOB_ID"),
		projectNamespace: os.Getenv("CI_PROJECT_NAMESPACE"),
		projectName:      os.Getenv("CI_PROJECT_NAME"),
		hubProxy:         proxyURL,
		lineage:          genLineage(),
	}, nil
}

func (c *ConfigViper) ServerURL() string {
	return c.v.GetString(serverURL)
}

func (c *ConfigViper) BrowserName() string {
	return strings.ToLower(strings.TrimSpace(c.v.GetString(browserName)))
}

func (c *ConfigViper) ConnectTimeout() time.Duration {
	return c.v.GetDuration(connectTimeout)
}

func (c *ConfigViper) RequestTimeout() time.Duration {
	return c.v.GetDuration(requestTimeout)
}

func (c *ConfigViper) CreateAttempts() int {
	return c.v.GetInt(createAttempts)
}

func (c *ConfigViper) CreateBackoff() time.Duration {
	return c.v.GetDuration(createBackoff)
}

func (c *ConfigViper) HubProxy() *url.URL {
	return c.hubProxy
}

func (c *ConfigViper) CapabilitiesURI() []string {
	var urls []string
	if uri := c.v.GetString(capabilitiesURI); uri != "" {
		urls = append(urls, uri)
	}
	if fallback := c.v.GetString(fallbackCapsURI); fallback != "" {
		urls = append(urls, fallback)
	}
	return urls
}

func (c *ConfigViper) JobID() string {
	return c.jobID
}

func (c *ConfigViper) ProjectNamespace() string {
	return c.projectNamespace
}

func (c *ConfigViper) ProjectName() string {
	return c.projectName
}

func (c *ConfigViper) SuiteFile() string {
	return c.v.GetString(suiteFile)
}

func (c *ConfigViper) MetricsListen() string {
	return c.v.GetString(metricsListen)
}

func (c *ConfigViper) EventBufferSize() int {
	return c.v.GetInt(eventBufferSize)
}

func (c *ConfigViper) ShutdownTimeout() time.Duration {
	return c.v.GetDuration(shutdownTimeout)
}

func (c *ConfigViper) Lineage() string {
	return c.lineage
}

func validateServerURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return errors.Wrap(err, "invalid server URL")
	}
	for _, scheme := range validServerSchemes {
		if u.Scheme == scheme && u.Host != "" {
			return nil
		}
	}
	return errors.Errorf("invalid server URL specified (%s), valid schemes are: %s", s, quoteStrings(validServerSchemes))
}

func bindEnvVars(v *viper.Viper) error {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envReplacer)
	v.SetEnvPrefix(ConfigPrefix)

	// the names Selenium grid tooling commonly exports work along with ST_ ones
	if err := v.BindEnv(serverURL, ConfigPrefix+"_SERVER_URL", "SELENIUM_REMOTE_URL"); err != nil {
		return err
	}
	return v.BindEnv(browserName, ConfigPrefix+"_BROWSER_NAME", "BROWSER")
}

func quoteStrings[T ~string](vals []T) string {
	var sb strings.Builder
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteRune('"')
		sb.WriteString(string(v))
		sb.WriteRune('"')
	}
	return sb.String()
}

var logLevelMap = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info":  zap.InfoLevel,
	"warn":  zap.WarnLevel,
	"error": zap.ErrorLevel,
}

func ZapLogLevel(strLevel string, defaultLevel zapcore.Level) zapcore.Level {
	if lvl, ok := logLevelMap[strings.ToLower(strLevel)]; ok {
		return lvl
	}
	return defaultLevel
}
