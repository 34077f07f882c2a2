package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/selebrow/steward/internal/services/launcher"
	"github.com/selebrow/steward/pkg/capabilities"
)

func ParseCmdLine(f *pflag.FlagSet, args []string) (*pflag.FlagSet, bool, error) {
	help := f.BoolP("help", "h", false, "Show usage help")
	f.StringP(serverURL, "s", DefaultServerURL, "Remote WebDriver hub URL")
	f.StringP(browserName, "b", DefaultBrowserName, "Browser to launch, known browsers are: "+
		strings.Join(capabilities.KnownBrowsers(), ", ")+" (other names are passed to the hub as is)")

	f.Duration(connectTimeout, launcher.DefaultConnectTimeout, "Timeout for connecting to the hub, per create attempt")
	f.Duration(requestTimeout, launcher.DefaultRequestTimeout, "Timeout for a single hub request")
	f.Int(createAttempts, launcher.DefaultAttempts, "Number of session create attempts on transient errors")
	f.Duration(createBackoff, launcher.DefaultBackoff, "Pause between session create attempts")

	f.String(capabilitiesURI, "", "Path or URL to extra capabilities YAML template")
	f.String(fallbackCapsURI, DefaultFallbackCapabilitiesURI, "Fallback path or URL to extra capabilities"+
		" YAML template in case --"+capabilitiesURI+" is not available")
	f.String(hubProxy, "", "Proxy URL to reach the hub through, e.g. socks5://127.0.0.1:1080"+
		" (HTTP proxy environment variables are used when not set)")

	f.StringP(suiteFile, "f", "", "Path to suite YAML file to run")
	f.String(metricsListen, "", "Listening address for Prometheus metrics endpoint, disabled when empty")
	f.Int(eventBufferSize, 100, "Buffer size of session event subscribers")
	f.Duration(shutdownTimeout, 30*time.Second, "Timeout to release leftover sessions on shutdown")

	if err := f.Parse(args); err != nil {
		return nil, true, err
	}
	if *help {
		_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		f.PrintDefaults()
		return nil, true, nil
	}

	return f, false, nil
}
