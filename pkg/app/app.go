package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/selebrow/steward/internal/controllers"
	"github.com/selebrow/steward/internal/services/launcher"
	"github.com/selebrow/steward/internal/services/teardown"
	"github.com/selebrow/steward/pkg/capabilities"
	"github.com/selebrow/steward/pkg/config"
	"github.com/selebrow/steward/pkg/event"
	"github.com/selebrow/steward/pkg/session"
	"github.com/selebrow/steward/pkg/signal"
	"github.com/selebrow/steward/pkg/suite"
	"github.com/selebrow/steward/pkg/webdriver"
)

var (
	InitLogger              func() *zap.Logger                                              = InitLoggerFunc
	InitConfig              func() config.Config                                            = InitConfigFunc
	InitSignalHandler       func(config.Config) *signal.Handler                             = InitSignalHandlerFunc
	InitCapabilitiesBuilder func(config.Config, []byte) *capabilities.Builder               = InitCapabilitiesBuilderFunc
	InitEventBroker         func(config.Config, *signal.Handler) event.EventBroker          = InitEventBrokerFunc
	InitSessionFactory      func(config.Config) webdriver.Factory                           = InitSessionFactoryFunc
	InitSessionLauncher     func(config.Config, webdriver.Factory) launcher.SessionLauncher = InitSessionLauncherFunc
	InitSessionTeardown     func(config.Config) teardown.SessionTeardown                    = InitSessionTeardownFunc
	InitMiddleware          func(config.Config, *echo.Echo, *zap.Logger)                    = InitMiddlewareFunc
	InitMetrics             func(
		config.Config,
		event.EventBroker,
		prometheus.Registerer,
		*signal.Handler,
	) = InitMetricsFunc
	InitAPI func(
		config.Config,
		*echo.Echo,
		prometheus.Gatherer,
		InfoController,
		StatusController,
	) = InitAPIFunc
)

func Run(gitRef, gitSha, appName string) {
	l := InitLogger()
	mainLog := l.Sugar().Named("app")
	appVersion := fmt.Sprintf("%s-%s", gitRef, gitSha)
	mainLog.Infof("starting %s build %s (%s/%s)", appName, appVersion, runtime.GOOS, runtime.GOARCH)

	cfg := InitConfig()
	sig := InitSignalHandler(cfg)

	capsTemplate := loadCapabilitiesTemplate(cfg, http.DefaultClient) // using Default client with sane timeout defaults
	builder := InitCapabilitiesBuilder(cfg, capsTemplate)
	testSuite := loadSuite(cfg)

	eb := InitEventBroker(cfg, sig)
	reg := prometheus.NewRegistry()
	InitMetrics(cfg, eb, reg, sig)

	factory := InitSessionFactory(cfg)
	ln := InitSessionLauncher(cfg, factory)
	td := InitSessionTeardown(cfg)
	slots := initSlotStorage(td, sig)
	listener := initListener(cfg, builder, ln, td, slots, eb)

	if addr := cfg.MetricsListen(); addr != "" {
		srvLog := l.Named("server")
		e := initEcho(cfg, srvLog)
		InitAPI(
			cfg,
			e,
			reg,
			initInfoController(cfg, appName, gitRef, gitSha),
			controllers.NewStatusController(slots),
		)

		go func() {
			sl := srvLog.Sugar()
			sl.Infof("serving metrics on %s", addr)
			if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				sl.Fatalw("failed to start the server", zap.Error(err))
			}
		}()
		sig.RegisterShutdownHook(nil, e.Shutdown)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig.RegisterInterruptHook(cancel)

	var (
		res    *suite.Result
		runErr error
	)
	done := make(chan struct{})
	runner := suite.NewRunner(listener, nowFunc, l.Named("suite"))
	go func() {
		defer close(done)
		res, runErr = runner.Run(ctx, testSuite)
	}()

	code := sig.Start(done)
	if code != 0 {
		// run goroutine may still be finishing the current test
		os.Exit(code)
	}
	os.Exit(exitCode(res, runErr, mainLog))
}

func exitCode(res *suite.Result, runErr error, l *zap.SugaredLogger) int {
	if runErr != nil {
		l.Errorw("suite run failed", zap.Error(runErr))
		return 1
	}
	if !res.OK() {
		for _, f := range res.Failures {
			l.With(zap.Stringer("test", f.Test)).Errorf("FAILED: %v", f.Err)
		}
		return 1
	}
	return 0
}

// initSlotStorage leftover sessions are released on shutdown
func initSlotStorage(td teardown.SessionTeardown, sig *signal.Handler) *session.LocalSlotStorage {
	s := session.NewLocalSlotStorage(td.Teardown, loggerFor("session"))
	sig.RegisterShutdownHook(s, s.Shutdown)
	return s
}
