package transcripts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/semaphore"

	"github.com/tutorlink/session-gateway/internal/errors"
	"github.com/tutorlink/session-gateway/internal/log"
	"github.com/tutorlink/session-gateway/internal/retry"
	"github.com/tutorlink/session-gateway/internal/syncmap"
)

const (
	reconnectInitialInterval = time.Second
	reconnectMaxInterval     = 15 * time.Second
	reconnectMaxElapsed      = time.Minute
)

type session struct {
	id     string
	room   string
	cancel context.CancelFunc
	done   chan struct{}
}

type managerImpl struct {
	source    Source
	publisher Publisher
	sessions  *syncmap.Map[string, *session]
	sem       *semaphore.Weighted
	retrier   retry.Retry
	clock     clockwork.Clock

	idleTimeout time.Duration
	logger      *log.Logger

	rootCtx context.Context
	cancel  context.CancelFunc
}

// NewManager runs at most maxSessions concurrent transcription sessions,
// one per room. Sessions that stay silent for idleTimeout are stopped.
func NewManager(
	source Source,
	publisher Publisher,
	maxSessions int64,
	idleTimeout time.Duration,
	logger *log.Logger,
) Manager {
	return newManager(source, publisher, maxSessions, idleTimeout, clockwork.NewRealClock(), logger)
}

func newManager(
	source Source,
	publisher Publisher,
	maxSessions int64,
	idleTimeout time.Duration,
	clock clockwork.Clock,
	logger *log.Logger,
) Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &managerImpl{
		source:      source,
		publisher:   publisher,
		sessions:    syncmap.New[string, *session](),
		sem:         semaphore.NewWeighted(maxSessions),
		retrier:     retry.New(logger, reconnectInitialInterval, reconnectMaxInterval, reconnectMaxElapsed),
		clock:       clock,
		idleTimeout: idleTimeout,
		logger:      logger,
		rootCtx:     ctx,
		cancel:      cancel,
	}
}

func (m *managerImpl) StartSession(_ context.Context, roomName string) error {
	if !m.sem.TryAcquire(1) {
		return errors.Newf(ErrSessionLimit, "cannot start transcription for %s", roomName)
	}

	sessCtx, sessCancel := context.WithCancel(m.rootCtx)
	sess := &session{
		id:     uuid.NewString(),
		room:   roomName,
		cancel: sessCancel,
		done:   make(chan struct{}),
	}

	if _, loaded := m.sessions.LoadOrStore(roomName, sess); loaded {
		sessCancel()
		m.sem.Release(1)
		return errors.Newf(ErrSessionExists, "room %s", roomName)
	}

	stream, err := m.source.Open(sessCtx, roomName)
	if err != nil {
		m.sessions.Delete(roomName)
		sessCancel()
		m.sem.Release(1)
		return err
	}

	m.logger.Info("transcription session started",
		log.String("room", roomName),
		log.String("sessionId", sess.id))
	go m.run(sessCtx, sess, stream)
	return nil
}

func (m *managerImpl) StopSession(roomName string) error {
	sess, ok := m.sessions.LoadAndDelete(roomName)
	if !ok {
		return errors.Newf(ErrNoSession, "room %s", roomName)
	}

	sess.cancel()
	m.logger.Info("transcription session stopped", log.String("room", roomName))
	return nil
}

func (m *managerImpl) ActiveSessions() []string {
	return m.sessions.Keys()
}

func (m *managerImpl) Close() {
	m.cancel()
}

func (m *managerImpl) run(ctx context.Context, sess *session, stream Stream) {
	defer func() {
		_ = stream.Close()
		// only remove our own entry; StopSession may already have done it
		// and a new session may have taken the slot
		if cur, ok := m.sessions.Load(sess.room); ok && cur.id == sess.id {
			m.sessions.Delete(sess.room)
		}
		m.sem.Release(1)
		close(sess.done)
	}()

	idle := m.clock.NewTimer(m.idleTimeout)
	defer idle.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-idle.Chan():
			m.logger.Info("transcription session idle, stopping",
				log.String("room", sess.room))
			return

		case ev, ok := <-stream.Events():
			if !ok {
				next, err := m.reconnect(ctx, sess.room)
				if err != nil {
					m.logger.Warn("transcript stream lost and reconnect failed",
						log.String("room", sess.room),
						log.Error(err))
					return
				}
				_ = stream.Close()
				stream = next
				continue
			}

			idle.Reset(m.idleTimeout)
			m.publisher.Publish(ctx, ev)
		}
	}
}

func (m *managerImpl) reconnect(ctx context.Context, roomName string) (Stream, error) {
	var stream Stream
	err := m.retrier.Do(ctx, func() error {
		var err error
		stream, err = m.source.Open(ctx, roomName)
		return err
	})
	return stream, err
}
