package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheris-rpg/etheris/internal/testing/leaktest"
)

type fakeRefillService struct {
	mu     sync.Mutex
	calls  int
	result int
	err    error
}

func (s *fakeRefillService) RefillAll(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.result, s.err
}

func (s *fakeRefillService) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type fakeNotifier struct {
	mu       sync.Mutex
	refilled []int
}

func (n *fakeNotifier) AnnounceRefill(_ context.Context, refilled int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.refilled = append(n.refilled, refilled)
	return nil
}

func TestTimeUntilNextRefill(t *testing.T) {
	w := NewDailyRefillWorker(&fakeRefillService{}, nil)

	w.now = func() time.Time {
		return time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	}
	assert.Equal(t, time.Minute, w.timeUntilNextRefill())

	w.now = func() time.Time {
		return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	}
	assert.Equal(t, 24*time.Hour, w.timeUntilNextRefill())
}

func TestExecuteRefillNotifies(t *testing.T) {
	svc := &fakeRefillService{result: 7}
	notifier := &fakeNotifier{}
	w := NewDailyRefillWorker(svc, notifier)

	w.executeRefill()
	w.wg.Wait()

	assert.Equal(t, 1, svc.callCount())
	assert.Equal(t, []int{7}, notifier.refilled)
}

func TestExecuteRefillSkipsNotifyOnZero(t *testing.T) {
	svc := &fakeRefillService{result: 0}
	notifier := &fakeNotifier{}
	w := NewDailyRefillWorker(svc, notifier)

	w.executeRefill()
	w.wg.Wait()

	assert.Empty(t, notifier.refilled)
}

func TestExecuteRefillErrorDoesNotNotify(t *testing.T) {
	svc := &fakeRefillService{err: errors.New("db down")}
	notifier := &fakeNotifier{}
	w := NewDailyRefillWorker(svc, notifier)

	w.executeRefill()
	w.wg.Wait()

	assert.Equal(t, 1, svc.callCount())
	assert.Empty(t, notifier.refilled)
}

func TestRunNow(t *testing.T) {
	svc := &fakeRefillService{result: 3}
	w := NewDailyRefillWorker(svc, nil)

	refilled, err := w.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, refilled)
}

func TestShutdownIdempotent(t *testing.T) {
	leaktest.CheckNone(t, func() {
		w := NewDailyRefillWorker(&fakeRefillService{}, nil)
		w.Start()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, w.Shutdown(ctx))
		require.NoError(t, w.Shutdown(ctx))
	})
}
