package capabilities

import (
	"maps"
	"slices"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"

	"github.com/selebrow/steward/pkg/models"
)

const (
	Firefox   = "firefox"
	Chrome    = "chrome"
	IE        = "ie"
	Safari    = "safari"
	PhantomJS = "phantomjs"
)

const (
	BrowserNameKey     = "browserName"
	PlatformKey        = "platform"
	VersionKey         = "version"
	FirefoxOptionsKey  = "moz:firefoxOptions"
	IECleanSessionKey  = "ie.ensureCleanSession"
	SelenoidOptionsKey = "selenoid:options"

	PlatformAny = "ANY"

	// FocusTestModePref makes Firefox fire focus and change events in unfocused windows,
	// otherwise tests running side by side steal focus from each other
	FocusTestModePref = "focusmanager.testmode"
)

type override func(caps *Set)

var overrides = map[string]override{
	Firefox:   firefoxOverride,
	IE:        ieOverride,
	Chrome:    noOverride,
	Safari:    noOverride,
	PhantomJS: noOverride,
}

// Build returns capabilities for the browser. Unknown browsers get the base set only.
func Build(browserName string) *Set {
	caps := NewSet().
		Put(BrowserNameKey, browserName).
		Put(PlatformKey, PlatformAny)

	if o, ok := overrides[browserName]; ok {
		o(caps)
	}
	return caps
}

func IsKnown(browserName string) bool {
	_, ok := overrides[browserName]
	return ok
}

func KnownBrowsers() []string {
	return slices.Sorted(maps.Keys(overrides))
}

func firefoxOverride(caps *Set) {
	caps.Put(FirefoxOptionsKey, map[string]any{
		"prefs": map[string]any{
			FocusTestModePref: true,
		},
	})
}

func ieOverride(caps *Set) {
	caps.Put(IECleanSessionKey, true)
}

func noOverride(_ *Set) {}

// Builder builds per-test capabilities on top of Build, applying extra
// capabilities configured for the whole run
type Builder struct {
	extra *Set
}

func NewBuilder(extra *Set) *Builder {
	return &Builder{extra: extra}
}

func (b *Builder) BuildFor(browserName string, id models.TestIdentity) (*Set, error) {
	caps := Build(browserName)
	if name := id.String(); name != "" {
		caps.Put(SelenoidOptionsKey, map[string]any{"name": name})
	}
	if b.extra != nil {
		if err := caps.Merge(b.extra); err != nil {
			return nil, err
		}
	}
	return caps, nil
}

// Decode returns typed view over the capability set
func Decode(caps *Set) (*models.Capabilities, error) {
	c := new(models.Capabilities)
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
		Result:     c,
	})
	if err != nil {
		return nil, err
	}

	if err := d.Decode(caps.Map()); err != nil {
		return nil, errors.Wrap(err, "failed to decode capabilities")
	}
	return c, nil
}
