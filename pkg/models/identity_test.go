package models

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestTestIdentity_String(t *testing.T) {
	tests := []struct {
		name string
		id   TestIdentity
		want string
	}{
		{name: "class and method", id: TestIdentity{Class: "LoginTest", Method: "testSubmit"}, want: "LoginTest.testSubmit"},
		{name: "method only", id: TestIdentity{Method: "TestLogin"}, want: "TestLogin"},
		{name: "class only", id: TestIdentity{Class: "LoginTest"}, want: "LoginTest"},
		{name: "empty", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			g.Expect(tt.id.String()).To(Equal(tt.want))
		})
	}
}

func TestCapabilities_Getters(t *testing.T) {
	g := NewWithT(t)

	caps := &Capabilities{Name: "firefox", Version: "52", Platform: "ANY"}
	g.Expect(caps.GetName()).To(Equal("firefox"))
	g.Expect(caps.GetVersion()).To(Equal("52"))
	g.Expect(caps.GetPlatform()).To(Equal("ANY"))
	g.Expect(caps.GetTestName()).To(BeEmpty())
	g.Expect(caps.IsVNCEnabled()).To(BeFalse())

	caps.BrowserVersion = "119.0"
	caps.PlatformName = "linux"
	caps.SelenoidOptions = &SelenoidOptions{TestName: "LoginTest.testSubmit", EnableVNC: true}
	g.Expect(caps.GetVersion()).To(Equal("119.0"))
	g.Expect(caps.GetPlatform()).To(Equal("linux"))
	g.Expect(caps.GetTestName()).To(Equal("LoginTest.testSubmit"))
	g.Expect(caps.IsVNCEnabled()).To(BeTrue())
}
