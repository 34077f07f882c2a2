package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/steward/mocks"
	"github.com/selebrow/steward/pkg/models"
	"github.com/selebrow/steward/pkg/session"
)

var (
	idLogin  = models.TestIdentity{Class: "LoginTest", Method: "testLogin"}
	idExport = models.TestIdentity{Class: "ReportTest", Method: "testExport"}
	idToken  = models.TestIdentity{Class: "LoginTest", Method: "testApiToken"}
)

func TestLocalSlotStorage_AllocateRelease(t *testing.T) {
	g := NewWithT(t)
	s := session.NewLocalSlotStorage(mocks.NewCloseFunc(t).Execute, zaptest.NewLogger(t))

	g.Expect(s.Allocate(idToken, session.Null())).To(Succeed())
	g.Expect(s.Len()).To(Equal(1))

	err := s.Allocate(idToken, session.Null())
	g.Expect(err).To(MatchError(session.ErrSlotOccupied))
	g.Expect(err).To(MatchError(ContainSubstring("LoginTest.testApiToken")))

	h, ok := s.Get(idToken)
	g.Expect(ok).To(BeTrue())
	g.Expect(h.Kind()).To(Equal(session.KindNull))

	_, ok = s.Get(idLogin)
	g.Expect(ok).To(BeFalse())

	h, ok = s.Release(idToken)
	g.Expect(ok).To(BeTrue())
	g.Expect(h.Kind()).To(Equal(session.KindNull))
	g.Expect(s.Len()).To(BeZero())

	_, ok = s.Release(idToken)
	g.Expect(ok).To(BeFalse())
}

func TestLocalSlotStorage_Shutdown(t *testing.T) {
	g := NewWithT(t)
	closer := mocks.NewCloseFunc(t)
	s := session.NewLocalSlotStorage(closer.Execute, zaptest.NewLogger(t))

	login, _ := newLive(t, "s-1")
	export, _ := newLive(t, "s-2")
	g.Expect(s.Allocate(idLogin, session.FromLive(login))).To(Succeed())
	g.Expect(s.Allocate(idExport, session.FromLive(export))).To(Succeed())
	g.Expect(s.Allocate(idToken, session.Null())).To(Succeed())

	var (
		mu     sync.Mutex
		closed []string
	)
	closer.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, h session.Handle) error {
		live, _ := h.Live()
		mu.Lock()
		defer mu.Unlock()
		closed = append(closed, live.ID())
		if live.ID() == "s-2" {
			return errors.New("hub is gone")
		}
		return nil
	}).Twice()

	g.Expect(s.Shutdown(context.TODO())).To(Succeed())
	g.Expect(closed).To(ConsistOf("s-1", "s-2"))
	g.Expect(s.Len()).To(BeZero())
	g.Expect(s.IsShutdown()).To(BeTrue())
	g.Expect(s.Allocate(idLogin, session.Null())).To(MatchError(session.ErrStorageShutdown))
}

func TestLocalSlotStorage_ShutdownTimeout(t *testing.T) {
	g := NewWithT(t)
	closer := mocks.NewCloseFunc(t)
	s := session.NewLocalSlotStorage(closer.Execute, zaptest.NewLogger(t))

	live, _ := newLive(t, "s-1")
	g.Expect(s.Allocate(idLogin, session.FromLive(live))).To(Succeed())

	release := make(chan struct{})
	finished := make(chan struct{})
	closer.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, session.Handle) error {
		<-release
		close(finished)
		return nil
	}).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	g.Expect(s.Shutdown(ctx)).To(MatchError(context.DeadlineExceeded))
	close(release)
	g.Eventually(finished).Should(BeClosed())
}
