package app

import (
	"context"
	"io"
	"net/http"
	"os"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	hc "github.com/selebrow/steward/internal/common/client"
	"github.com/selebrow/steward/internal/controllers"
	"github.com/selebrow/steward/internal/services/launcher"
	"github.com/selebrow/steward/internal/services/teardown"
	"github.com/selebrow/steward/pkg/capabilities"
	"github.com/selebrow/steward/pkg/config"
	"github.com/selebrow/steward/pkg/event"
	"github.com/selebrow/steward/pkg/lifecycle"
	"github.com/selebrow/steward/pkg/log"
	"github.com/selebrow/steward/pkg/metrics"
	"github.com/selebrow/steward/pkg/models"
	"github.com/selebrow/steward/pkg/session"
	"github.com/selebrow/steward/pkg/signal"
	"github.com/selebrow/steward/pkg/suite"
	"github.com/selebrow/steward/pkg/webdriver"
)

var (
	InitLog *zap.SugaredLogger

	nowFunc   = time.Now
	afterFunc = time.After
)

func loggerFor(name string) *zap.Logger {
	return log.GetLogger().Named(name)
}

func InitLoggerFunc() *zap.Logger {
	logger := log.GetLogger()
	InitLog = logger.Sugar().Named("init")
	return logger
}

func InitConfigFunc() config.Config {
	flags, exit, err := config.ParseCmdLine(pflag.CommandLine, os.Args[1:])
	if err != nil {
		InitLog.Fatalw("failed to parse command line", zap.Error(err))
	}
	if exit {
		os.Exit(1)
	}

	cfg, err := config.NewConfig(viper.GetViper(), flags)
	if err != nil {
		InitLog.Fatalw("failed to initialize configuration", zap.Error(err))
	}

	InitLog.With(zap.String("lineage", cfg.Lineage())).
		Infof("using %s browser on %s", cfg.BrowserName(), cfg.ServerURL())
	return cfg
}

func InitSignalHandlerFunc(cfg config.Config) *signal.Handler {
	return signal.NewHandler(cfg.ShutdownTimeout(), loggerFor("signal"))
}

// loadCapabilitiesTemplate returns nil when no capabilities template is configured
func loadCapabilitiesTemplate(cfg config.CapabilitiesConfig, httpClient hc.HTTPClient) []byte {
	httpPattern := regexp.MustCompile(`(?i)^https?://.+`)
	uris := cfg.CapabilitiesURI()
	if len(uris) == 0 {
		return nil
	}

	for i, uri := range uris {
		var (
			data []byte
			err  error
		)

		if httpPattern.MatchString(uri) {
			data, err = downloadCapabilitiesTemplate(httpClient, uri)
		} else {
			data, err = os.ReadFile(uri)
		}

		if err != nil {
			errMsg := "failed to load capabilities template"
			l := InitLog.With(zap.Error(err), zap.String("uri", uri))
			if i == len(uris)-1 {
				l.Fatal(errMsg)
			} else {
				l.Warn(errMsg + " (will try fallback URI)")
			}
		} else {
			return data
		}
	}

	// unreachable code
	return nil
}

func downloadCapabilitiesTemplate(httpClient hc.HTTPClient, uri string) ([]byte, error) {
	InitLog.Infow("downloading capabilities template from remote URL", zap.String("url", uri))
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, uri, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, errors.Errorf("request %s failed with code %d", uri, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func InitCapabilitiesBuilderFunc(cfg config.Config, tpl []byte) *capabilities.Builder {
	extra, err := renderCapabilities(cfg, tpl)
	if err != nil {
		InitLog.Fatalw("failed to render capabilities template", zap.Error(err))
	}
	return capabilities.NewBuilder(extra)
}

type templateConfig interface {
	config.CIConfig
	BrowserName() string
	Lineage() string
}

func renderCapabilities(cfg templateConfig, tpl []byte) (*capabilities.Set, error) {
	if len(tpl) == 0 {
		return nil, nil
	}
	return capabilities.RenderExtra(string(tpl), capabilities.TemplateContext{
		Browser: cfg.BrowserName(),
		Lineage: cfg.Lineage(),
		CIEnvironment: capabilities.CIContext{
			JobID:            cfg.JobID(),
			ProjectNamespace: cfg.ProjectNamespace(),
			ProjectName:      cfg.ProjectName(),
		},
	})
}

func loadSuite(cfg config.RunnerConfig) *suite.Suite {
	path := cfg.SuiteFile()
	if path == "" {
		InitLog.Fatal("suite file is not specified")
	}
	s, err := suite.LoadFile(path)
	if err != nil {
		InitLog.Fatalw("failed to load suite", zap.Error(err), zap.String("path", path))
	}
	return s
}

func InitEventBrokerFunc(cfg config.Config, sig *signal.Handler) event.EventBroker {
	eb := event.NewEventBrokerImpl(cfg.EventBufferSize(), loggerFor("event"))
	sig.RegisterShutdownHook(eb, eb.ShutDown)
	return eb
}

// InitMetricsFunc collector drains event channels until the broker is shut down
func InitMetricsFunc(_ config.Config, eb event.EventBroker, reg prometheus.Registerer, sig *signal.Handler) {
	c := metrics.NewCollector(reg, loggerFor("metrics"))
	c.Start(eb)
	sig.RegisterShutdownHook(c, func(ctx context.Context) error {
		done := make(chan struct{})
		go func() {
			defer close(done)
			c.Wait()
		}()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-done:
			return nil
		}
	})
}

func InitSessionFactoryFunc(cfg config.Config) webdriver.Factory {
	return webdriver.NewRemoteFactory(cfg.HubProxy(), loggerFor("webdriver"))
}

func InitSessionLauncherFunc(cfg config.Config, f webdriver.Factory) launcher.SessionLauncher {
	opts := launcher.Options{
		Attempts: cfg.CreateAttempts(),
		Backoff:  cfg.CreateBackoff(),
	}
	return launcher.NewSessionLauncher(f, opts, afterFunc, nowFunc, loggerFor("launcher"))
}

func InitSessionTeardownFunc(_ config.Config) teardown.SessionTeardown {
	return teardown.NewSessionTeardown(loggerFor("teardown"))
}

func initListener(
	cfg config.Config,
	builder *capabilities.Builder,
	sl launcher.SessionLauncher,
	td teardown.SessionTeardown,
	slots *session.LocalSlotStorage,
	eb event.EventBroker,
) *lifecycle.Listener {
	settings := lifecycle.Settings{
		ServerURL:   cfg.ServerURL(),
		BrowserName: cfg.BrowserName(),
		Timeouts: models.Timeouts{
			Connect: cfg.ConnectTimeout(),
			Request: cfg.RequestTimeout(),
		},
	}
	return lifecycle.NewListener(settings, builder, sl, td, slots, eb, nowFunc, loggerFor("lifecycle"))
}

func initInfoController(cfg config.Config, appName, gitRef, gitSha string) *controllers.InfoController {
	return controllers.NewInfoController(controllers.RunInfo{
		Name:        appName,
		GitRef:      gitRef,
		GitSha:      gitSha,
		Lineage:     cfg.Lineage(),
		ServerURL:   cfg.ServerURL(),
		BrowserName: cfg.BrowserName(),
	})
}
