package session

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenmed-health/zenmed/internal/reminders"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	got, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	st := &State{Collapsed: true, Reminders: reminders.Seed()}
	require.NoError(t, s.Put(ctx, "a", st))

	got, err = s.Get(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Collapsed)
	assert.Equal(t, 5, got.Reminders.Len())

	// Stored state is isolated from later mutation of either copy.
	st.Reminders.Delete(1)
	got.Reminders.Delete(2)
	again, _ := s.Get(ctx, "a")
	assert.Equal(t, 5, again.Reminders.Len())

	require.NoError(t, s.Delete(ctx, "a"))
	got, _ = s.Get(ctx, "a")
	assert.Nil(t, got)
}

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2025, 2, 18, 9, 0, 0, 0, time.UTC)
	s := NewMemoryStore(10 * time.Minute)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "a", &State{Collapsed: true}))
	require.NoError(t, s.Put(ctx, "b", &State{}))

	now = now.Add(5 * time.Minute)
	require.NoError(t, s.Put(ctx, "b", &State{})) // refreshes b

	now = now.Add(6 * time.Minute)
	got, _ := s.Get(ctx, "a")
	assert.Nil(t, got, "a should have expired")
	got, _ = s.Get(ctx, "b")
	assert.NotNil(t, got, "b was refreshed")

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStoreOnChange(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	var counts []int
	s.OnChange(func(n int) { counts = append(counts, n) })
	ctx := context.Background()

	s.Put(ctx, "a", &State{})
	s.Put(ctx, "a", &State{Collapsed: true}) // update, not insert
	s.Put(ctx, "b", &State{})
	s.Delete(ctx, "a")

	assert.Equal(t, []int{1, 2, 1}, counts)
}

func TestMemoryStoreRunStopsWithContext(t *testing.T) {
	s := NewMemoryStore(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	s := NewRedisStore(client, 30*time.Minute)
	ctx := context.Background()
	require.NoError(t, s.Ping(ctx))

	got, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	list := reminders.Seed()
	list.Toggle(5)
	st := &State{
		Collapsed: true,
		Reminders: list,
		Toast:     &Toast{Title: "Message sent!"},
	}
	require.NoError(t, s.Put(ctx, "abc", st))
	assert.True(t, mr.Exists(redisKeyPrefix+"abc"))
	assert.Equal(t, 30*time.Minute, mr.TTL(redisKeyPrefix+"abc"))

	got, err = s.Get(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Collapsed)
	assert.Equal(t, "Message sent!", got.Toast.Title)
	r, ok := got.Reminders.Get(5)
	require.True(t, ok)
	assert.True(t, r.Active)

	mr.FastForward(31 * time.Minute)
	got, err = s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	s := NewRedisStore(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "abc", &State{}))
	require.NoError(t, s.Delete(ctx, "abc"))
	assert.False(t, mr.Exists(redisKeyPrefix+"abc"))
}

func TestRedisStoreCorruptValue(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	require.NoError(t, mr.Set(redisKeyPrefix+"bad", "{not json"))
	s := NewRedisStore(client, time.Minute)

	_, err := s.Get(context.Background(), "bad")
	assert.Error(t, err)
}

func newTestManager(store Store) *Manager {
	return NewManager(store, Options{CookieName: "sid"}, zerolog.New(io.Discard))
}

func TestMiddlewareIssuesCookie(t *testing.T) {
	m := newTestManager(NewMemoryStore(time.Minute))

	var seen string
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = IDFromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, seen, cookies[0].Value)
	assert.NotEmpty(t, seen)
}

func TestMiddlewareReusesValidCookie(t *testing.T) {
	m := newTestManager(NewMemoryStore(time.Minute))
	const id = "3f1c0f9e-8d0a-4f5e-9b1a-2c7d6e5f4a3b"

	var seen string
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = IDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: id})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, id, seen)
	assert.Empty(t, w.Result().Cookies())
}

func TestMiddlewareReplacesMalformedCookie(t *testing.T) {
	m := newTestManager(NewMemoryStore(time.Minute))

	var seen string
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = IDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "../../etc/passwd"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.NotEqual(t, "../../etc/passwd", seen)
	require.Len(t, w.Result().Cookies(), 1)
}

func TestManagerUpdateAndLoad(t *testing.T) {
	m := newTestManager(NewMemoryStore(time.Minute))
	ctx := WithID(context.Background(), "s1")

	assert.False(t, m.Load(ctx).Collapsed)

	m.Update(ctx, func(st *State) { st.Collapsed = !st.Collapsed })
	assert.True(t, m.Load(ctx).Collapsed)

	// Another session is unaffected.
	other := WithID(context.Background(), "s2")
	assert.False(t, m.Load(other).Collapsed)
}

func TestManagerWithoutIDDoesNotSave(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	m := newTestManager(store)

	st := m.Update(context.Background(), func(st *State) { st.Collapsed = true })
	assert.True(t, st.Collapsed)
	assert.Zero(t, store.Len())
}

func TestManagerPopToast(t *testing.T) {
	m := newTestManager(NewMemoryStore(time.Minute))
	ctx := WithID(context.Background(), "s1")

	assert.Nil(t, m.PopToast(ctx))

	m.Update(ctx, func(st *State) { st.Toast = &Toast{Title: "Message sent!"} })
	toast := m.PopToast(ctx)
	require.NotNil(t, toast)
	assert.Equal(t, "Message sent!", toast.Title)
	assert.Nil(t, m.PopToast(ctx))
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (*State, error) { return nil, assert.AnError }
func (failingStore) Put(context.Context, string, *State) error   { return assert.AnError }
func (failingStore) Delete(context.Context, string) error        { return assert.AnError }

func TestManagerDegradesOnStoreFailure(t *testing.T) {
	m := newTestManager(failingStore{})
	ctx := WithID(context.Background(), "s1")

	st := m.Load(ctx)
	require.NotNil(t, st)
	assert.False(t, st.Collapsed)

	st = m.Update(ctx, func(st *State) { st.Collapsed = true })
	assert.True(t, st.Collapsed)
}

func TestManagerConcurrentUpdates(t *testing.T) {
	m := newTestManager(NewMemoryStore(time.Minute))
	ctx := WithID(context.Background(), "s1")
	m.Update(ctx, func(st *State) { st.Reminders = reminders.Seed() })

	// 100 toggles of the same reminder must land as an even number of flips.
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Update(ctx, func(st *State) { st.Reminders.Toggle(5) })
		}()
	}
	wg.Wait()

	r, ok := m.Load(ctx).Reminders.Get(5)
	require.True(t, ok)
	assert.False(t, r.Active)
}

// blockingStore holds Put for one session ID until release is closed.
type blockingStore struct {
	*MemoryStore
	slowID  string
	entered chan struct{}
	release chan struct{}
}

func (s *blockingStore) Put(ctx context.Context, id string, st *State) error {
	if id == s.slowID {
		close(s.entered)
		<-s.release
	}
	return s.MemoryStore.Put(ctx, id, st)
}

func TestManagerUpdatesOfDifferentSessionsDoNotWait(t *testing.T) {
	store := &blockingStore{
		MemoryStore: NewMemoryStore(time.Minute),
		slowID:      "slow",
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	m := newTestManager(store)

	slowDone := make(chan struct{})
	go func() {
		defer close(slowDone)
		m.Update(WithID(context.Background(), "slow"), func(st *State) { st.Collapsed = true })
	}()
	<-store.entered

	fastDone := make(chan struct{})
	go func() {
		defer close(fastDone)
		m.Update(WithID(context.Background(), "fast"), func(st *State) { st.Collapsed = true })
	}()

	select {
	case <-fastDone:
	case <-time.After(2 * time.Second):
		t.Fatal("update of another session waited on the slow session")
	}

	close(store.release)
	<-slowDone
	assert.True(t, m.Load(WithID(context.Background(), "slow")).Collapsed)
	assert.True(t, m.Load(WithID(context.Background(), "fast")).Collapsed)

	m.mu.Lock()
	defer m.mu.Unlock()
	assert.Empty(t, m.locks)
}

func TestManagerEnterPublic(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	m := newTestManager(store)
	ctx := WithID(context.Background(), "s1")

	m.Update(ctx, func(st *State) {
		st.Collapsed = true
		st.Reminders = reminders.Seed()
		st.Toast = &Toast{Title: "hi"}
	})

	toast := m.EnterPublic(ctx)
	require.NotNil(t, toast)
	assert.Equal(t, "hi", toast.Title)

	st := m.Load(ctx)
	assert.False(t, st.Collapsed)
	assert.Nil(t, st.Reminders)
	assert.Nil(t, st.Toast)
	assert.Nil(t, m.EnterPublic(ctx))
}
