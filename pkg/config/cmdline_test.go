package config

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
)

func TestParseCmdLine(t *testing.T) {
	g := NewWithT(t)

	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f, exit, err := ParseCmdLine(f, []string{"-b", "chrome", "--create-attempts=2", "--suite-file", "suite.yaml"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(exit).To(BeFalse())

	g.Expect(f.GetString("browser-name")).To(Equal("chrome"))
	g.Expect(f.GetString("server-url")).To(Equal(DefaultServerURL))
	g.Expect(f.GetInt("create-attempts")).To(Equal(2))
	g.Expect(f.GetDuration("create-backoff")).To(Equal(time.Second))
	g.Expect(f.GetDuration("connect-timeout")).To(Equal(120 * time.Second))
	g.Expect(f.GetDuration("request-timeout")).To(Equal(180 * time.Second))
	g.Expect(f.GetString("suite-file")).To(Equal("suite.yaml"))
	g.Expect(f.GetString("metrics-listen")).To(BeEmpty())
}

func TestParseCmdLine_Error(t *testing.T) {
	g := NewWithT(t)
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	_, exit, err := ParseCmdLine(f, []string{"--nonexistent"})
	g.Expect(err).To(HaveOccurred())
	g.Expect(exit).To(BeTrue())
}

func TestParseCmdLine_Help(t *testing.T) {
	g := NewWithT(t)
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	_, exit, err := ParseCmdLine(f, []string{"-h"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(exit).To(BeTrue())
}
