package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/willsblog/microblog-api/internal/core/ports"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []ports.PasswordResetMail
}

func (m *recordingMailer) SendPasswordReset(_ context.Context, mail ports.PasswordResetMail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, mail)
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDispatcherDeliversAllMail(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := &recordingMailer{}
	d := NewDispatcher(3, mailer, zerolog.Nop())
	d.Start(ctx)

	const n = 20
	for i := 0; i < n; i++ {
		d.Enqueue(ports.PasswordResetMail{
			Email: fmt.Sprintf("user%d@example.com", i),
			Token: fmt.Sprintf("token-%d", i),
		})
	}

	waitFor(t, func() bool { return mailer.count() == n })
}

func TestDispatcherShardIsStable(t *testing.T) {
	d := NewDispatcher(4, &recordingMailer{}, zerolog.Nop())

	first := d.shardIndex("susan@example.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("susan@example.com"); got != first {
			t.Fatalf("shard for same recipient changed: %d then %d", first, got)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index %d out of range", first)
	}
}

func TestDispatcherDefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingMailer{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("worker count = %d, want %d", len(d.workers), defaultWorkers)
	}
}
