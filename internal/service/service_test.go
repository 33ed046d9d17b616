package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/openshelf/circulation/internal/docstore"
	"github.com/openshelf/circulation/internal/model"
	"github.com/openshelf/circulation/internal/repository"
	"github.com/openshelf/circulation/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type env struct {
	svc   *service.Service
	repo  repository.Repository
	store docstore.Store
	clock *testClock
}

func newEnv(t *testing.T) *env {
	t.Helper()
	log := zap.NewNop()
	store := docstore.NewMemory()
	repo, err := repository.NewRepository(store, log)
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSettings(context.Background()))

	clock := newTestClock()
	svc := service.NewService(repo, nil, log, service.WithNow(clock.Now))
	return &env{svc: svc, repo: repo, store: store, clock: clock}
}

func (e *env) calendarEventCount(t *testing.T, requestDocID string) int {
	t.Helper()
	docs, err := e.store.Find(context.Background(), docstore.CalendarEvents,
		docstore.Eq("checkoutRequestId", requestDocID))
	require.NoError(t, err)
	return len(docs)
}

func (e *env) seedBook(t *testing.T, status model.BookStatus) model.Book {
	t.Helper()
	displayID, err := e.repo.AllocateDisplayID(context.Background(), model.BookIDPrefix, "nextBookId")
	require.NoError(t, err)
	book := model.Book{
		DisplayID:  displayID,
		Title:      "The Left Hand of Darkness",
		AuthorLast: "Le Guin",
		Condition:  model.ConditionGood,
		Status:     status,
		CreatedAt:  e.clock.Now(),
		UpdatedAt:  e.clock.Now(),
	}
	require.NoError(t, e.repo.InsertBook(context.Background(), &book))
	return book
}

func (e *env) seedMember(t *testing.T, role model.Role) model.Member {
	t.Helper()
	displayID, err := e.repo.AllocateDisplayID(context.Background(), model.MemberIDPrefix, "nextMemberId")
	require.NoError(t, err)
	member := model.Member{
		DisplayID: displayID,
		LastName:  "Reyes",
		FirstName: "Ana",
		Email:     displayID + "@example.org",
		Role:      role,
		IsActive:  true,
		CreatedAt: e.clock.Now(),
		UpdatedAt: e.clock.Now(),
	}
	require.NoError(t, e.repo.InsertMember(context.Background(), &member))
	return member
}

func actorFor(m model.Member) model.Actor {
	return model.Actor{
		DocID:     m.DocID,
		DisplayID: m.DisplayID,
		Name:      m.FullName(),
		Role:      m.Role,
	}
}

func checkoutInput(book model.Book, borrower model.Member) service.CheckoutInput {
	return service.CheckoutInput{
		BookDocID:           book.DocID,
		BorrowerDocID:       borrower.DocID,
		ConditionAtCheckout: book.Condition,
	}
}

func windows(n int) []model.PickupWindow {
	ws := make([]model.PickupWindow, 0, n)
	for i := 0; i < n; i++ {
		ws = append(ws, model.PickupWindow{
			Date:      fmt.Sprintf("2024-03-%02d", i+2),
			StartTime: "10:00",
			EndTime:   "11:00",
		})
	}
	return ws
}
