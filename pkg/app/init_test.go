package app

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/steward/mocks"
	"github.com/selebrow/steward/pkg/capabilities"
)

const testCapsURL = "https://remote/capabilities.yaml"

var capsData = []byte("enableVNC: true")

func Test_loadCapabilitiesTemplate_local(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	c := mocks.NewCapabilitiesConfig(t)
	dir := t.TempDir()
	capsFile := dir + "/caps.yaml"
	err := os.WriteFile(capsFile, capsData, 0644)
	g.Expect(err).ToNot(HaveOccurred())

	c.EXPECT().CapabilitiesURI().Return([]string{capsFile, testCapsURL}).Once()
	got := loadCapabilitiesTemplate(c, nil)

	g.Expect(got).To(Equal(capsData))
}

func Test_loadCapabilitiesTemplate_FallbackRemote(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	c := mocks.NewCapabilitiesConfig(t)
	hc := mocks.NewHTTPClient(t)

	c.EXPECT().CapabilitiesURI().Return([]string{"qqqqqq/bebebe", testCapsURL}).Once()
	hc.EXPECT().Do(mock.Anything).RunAndReturn(func(req *http.Request) (*http.Response, error) {
		g.Expect(req.Method).To(Equal(http.MethodGet))
		g.Expect(req.URL.String()).To(Equal(testCapsURL))

		resp := &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewReader(capsData))}
		return resp, nil
	}).Once()
	got := loadCapabilitiesTemplate(c, hc)

	g.Expect(got).To(Equal(capsData))
}

func Test_loadCapabilitiesTemplate_NotConfigured(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	c := mocks.NewCapabilitiesConfig(t)
	c.EXPECT().CapabilitiesURI().Return(nil).Once()

	g.Expect(loadCapabilitiesTemplate(c, nil)).To(BeNil())
}

func Test_downloadCapabilitiesTemplate_BadStatus(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	hc := mocks.NewHTTPClient(t)
	hc.EXPECT().Do(mock.Anything).Return(&http.Response{
		StatusCode: http.StatusNotFound,
		Body:       io.NopCloser(bytes.NewReader(nil)),
	}, nil).Once()

	_, err := downloadCapabilitiesTemplate(hc, testCapsURL)
	g.Expect(err).To(MatchError("request https://remote/capabilities.yaml failed with code 404"))
}

type testTemplateConfig struct{}

func (testTemplateConfig) JobID() string            { return "4242" }
func (testTemplateConfig) ProjectNamespace() string { return "qa" }
func (testTemplateConfig) ProjectName() string      { return "shop" }
func (testTemplateConfig) BrowserName() string      { return "chrome" }
func (testTemplateConfig) Lineage() string          { return "0d4e" }

func Test_renderCapabilities(t *testing.T) {
	g := NewWithT(t)

	extra, err := renderCapabilities(testTemplateConfig{}, nil)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(extra).To(BeNil())

	tpl := `
build: "{{ .CIEnvironment.ProjectNamespace }}/{{ .CIEnvironment.ProjectName }}#{{ .CIEnvironment.JobID }}"
lineage: {{ .Lineage | quote }}
{{- if eq .Browser "chrome" }}
goog:chromeOptions:
  args: [--headless]
{{- end }}
`
	extra, err = renderCapabilities(testTemplateConfig{}, []byte(tpl))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(extra.Map()).To(Equal(map[string]any{
		"build":   "qa/shop#4242",
		"lineage": "0d4e",
		"goog:chromeOptions": map[string]any{
			"args": []any{"--headless"},
		},
	}))

	b := capabilities.NewBuilder(extra)
	g.Expect(b).ToNot(BeNil())
}
