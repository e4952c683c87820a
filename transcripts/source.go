package transcripts

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/spf13/viper"

	"github.com/tutorlink/session-gateway/internal/errors"
	"github.com/tutorlink/session-gateway/internal/log"
)

const sourceDialTimeout = 15 * time.Second

type SourceConfig struct {
	// URL of the speech provider's streaming endpoint. Empty disables
	// transcription entirely.
	URL       string `mapstructure:"url"`
	AuthToken string `mapstructure:"auth_token"`
}

func SetupSource(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("url"), "")
	v.SetDefault(p("auth_token"), "")
}

// NewSource returns a websocket-backed source, or an always-failing one
// when no provider is configured. Session starts then fail loudly instead
// of silently producing nothing.
func NewSource(cfg *SourceConfig, logger *log.Logger) Source {
	if cfg.URL == "" {
		logger.Warn("transcript provider not configured, transcription disabled")
		return &unavailableSource{}
	}
	return &wsSource{
		url:       cfg.URL,
		authToken: cfg.AuthToken,
		logger:    logger,
	}
}

type unavailableSource struct{}

func (s *unavailableSource) Open(_ context.Context, _ string) (Stream, error) {
	return nil, errors.New(ErrSourceUnavailable, "no provider URL configured")
}

type wsSource struct {
	url       string
	authToken string
	logger    *log.Logger
}

func (s *wsSource) Open(ctx context.Context, roomName string) (Stream, error) {
	dialURL := s.url + "?room=" + url.QueryEscape(roomName)

	opts := &websocket.DialOptions{}
	if s.authToken != "" {
		opts.HTTPHeader = http.Header{
			"Authorization": []string{"Bearer " + s.authToken},
		}
	}

	dialCtx, cancel := context.WithTimeout(ctx, sourceDialTimeout)
	defer cancel()

	conn, _, err := websocket.Dial(dialCtx, dialURL, opts)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, err, "dial %s failed", s.url)
	}

	stream := &wsStream{
		conn:   conn,
		room:   roomName,
		events: make(chan Event, 64),
		logger: s.logger,
	}
	go stream.readLoop(ctx)
	return stream, nil
}

// sourceFrame is the provider's wire format for one fragment.
type sourceFrame struct {
	Participant string `json:"participant"`
	Text        string `json:"text"`
	Final       bool   `json:"final"`
}

type wsStream struct {
	conn   *websocket.Conn
	room   string
	events chan Event
	logger *log.Logger
}

func (s *wsStream) Events() <-chan Event {
	return s.events
}

func (s *wsStream) Close() error {
	return s.conn.Close(websocket.StatusNormalClosure, "session stopped")
}

func (s *wsStream) readLoop(ctx context.Context) {
	defer close(s.events)

	for {
		var frame sourceFrame
		if err := wsjson.Read(ctx, s.conn, &frame); err != nil {
			if ctx.Err() == nil {
				s.logger.Debug("transcript stream closed",
					log.String("room", s.room),
					log.Error(err))
			}
			return
		}
		if frame.Text == "" {
			continue
		}

		ev := Event{
			Room:        s.room,
			Participant: frame.Participant,
			Text:        frame.Text,
			Final:       frame.Final,
			Timestamp:   time.Now().Unix(),
		}
		select {
		case s.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}
