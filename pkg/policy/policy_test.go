package policy

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/selebrow/steward/pkg/models"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		flags  models.SkipFlags
		want   Action
		reason string
	}{
		{name: "no flags", flags: models.SkipFlags{}, want: Launch, reason: ""},
		{name: "class flag", flags: models.SkipFlags{Class: true}, want: Skip, reason: "noBrowser set on class"},
		{name: "method flag", flags: models.SkipFlags{Method: true}, want: Skip, reason: "noBrowser set on method"},
		{name: "both flags", flags: models.SkipFlags{Class: true, Method: true}, want: Skip, reason: "noBrowser set on class"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			got := Resolve(tt.flags)
			g.Expect(got.Action).To(Equal(tt.want))
			g.Expect(got.Reason).To(Equal(tt.reason))
		})
	}
}

func TestResolve_SkipIffAnyFlag(t *testing.T) {
	g := NewWithT(t)
	for _, class := range []bool{false, true} {
		for _, method := range []bool{false, true} {
			got := Resolve(models.SkipFlags{Class: class, Method: method})
			g.Expect(got.Action == Skip).To(Equal(class || method))
			if class {
				g.Expect(got.Reason).To(ContainSubstring("class"))
			} else if method {
				g.Expect(got.Reason).To(ContainSubstring("method"))
			}
		}
	}
}

func TestAction_String(t *testing.T) {
	g := NewWithT(t)
	g.Expect(Skip.String()).To(Equal("skip"))
	g.Expect(Launch.String()).To(Equal("launch"))
}

func TestFlagsFromMarkers(t *testing.T) {
	g := NewWithT(t)

	g.Expect(FlagsFromMarkers(nil, nil)).To(Equal(models.SkipFlags{}))
	g.Expect(FlagsFromMarkers([]string{"slow", "noBrowser"}, nil)).To(Equal(models.SkipFlags{Class: true}))
	g.Expect(FlagsFromMarkers(nil, []string{"noBrowser"})).To(Equal(models.SkipFlags{Method: true}))
	g.Expect(FlagsFromMarkers([]string{"nobrowser"}, []string{"no-browser"})).To(Equal(models.SkipFlags{}))
}
