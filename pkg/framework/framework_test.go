package framework

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/selebrow/steward/pkg/models"
	"github.com/selebrow/steward/pkg/session"
)

func TestCase(t *testing.T) {
	g := NewWithT(t)
	id := models.TestIdentity{Class: "SearchTest", Method: "testQuery"}
	c := NewCase(id, Markers{Method: []string{"noBrowser"}})

	var tc TestCase = c
	g.Expect(tc.Name()).To(Equal("SearchTest.testQuery"))
	g.Expect(tc.Identity()).To(Equal(id))
	g.Expect(tc.Markers().Method).To(ConsistOf("noBrowser"))
	g.Expect(c.Session().Kind()).To(Equal(session.KindAbsent))

	tc.Slot().Set(session.Null())
	g.Expect(c.Session().Kind()).To(Equal(session.KindNull))

	h := tc.Slot().Take()
	g.Expect(h.Kind()).To(Equal(session.KindNull))
	g.Expect(c.Session().Kind()).To(Equal(session.KindAbsent))
}

func TestWarning(t *testing.T) {
	g := NewWithT(t)
	var w WarningTest = NewWarning("BrokenTest", "no tests found")
	g.Expect(w.Name()).To(Equal("BrokenTest"))
	g.Expect(w.Warning()).To(Equal("no tests found"))

	_, ok := w.(TestCase)
	g.Expect(ok).To(BeFalse())
}
