package player

import (
	"sync"
	"time"
	"tunebot/internal/core/port"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// Track is a queued item. Start and End select the played part of the
// source; a zero End means the end of the source.
type Track struct {
	ID     uuid.UUID
	Title  string
	Length time.Duration
	Start  time.Duration
	End    time.Duration
}

func NewTrack(title string, length time.Duration) *Track {
	return &Track{ID: uuid.Must(uuid.NewV4()), Title: title, Length: length}
}

func (t *Track) StartOffset() time.Duration {
	return t.Start
}

func (t *Track) endPosition() time.Duration {
	if t.End <= 0 || t.End > t.Length {
		return t.Length
	}

	return t.End
}

func (t *Track) EffectiveDuration() time.Duration {
	return max(0, t.endPosition()-t.Start)
}

func (t *Track) EffectiveTitle() string {
	return t.Title
}

// Session is the playback state of one chat. All methods are safe for
// concurrent use; mutations are serialised by the session's mutex.
type Session struct {
	ID     uuid.UUID
	ChatID int64

	mu      sync.Mutex
	current *Track
	queue   []*Track
	paused  bool
	base    time.Duration
	since   time.Time
	now     func() time.Time
}

func newSession(chatID int64, now func() time.Time) *Session {
	return &Session{ID: uuid.Must(uuid.NewV4()), ChatID: chatID, now: now}
}

func (s *Session) IsQueueEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current == nil && len(s.queue) == 0
}

func (s *Session) PlayingTrack() (port.Track, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, false
	}

	return s.current, true
}

// Enqueue appends tracks, starting the first one when nothing is playing.
func (s *Session) Enqueue(tracks ...*Track) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue = append(s.queue, tracks...)
	if s.current == nil {
		s.advance()
	}
}

// Skip drops the current track and starts the next one.
func (s *Session) Skip() (port.Track, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	skipped := s.current
	if skipped == nil {
		return nil, false
	}

	s.advance()
	log.Debug().Int64("chatId", s.ChatID).Str("track", skipped.ID.String()).Msg("skipped track")

	return skipped, true
}

func (s *Session) advance() {
	if len(s.queue) == 0 {
		s.current = nil
		return
	}

	s.current = s.queue[0]
	s.queue = s.queue[1:]
	s.setPosition(s.current.Start)
}

func (s *Session) SetPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.base = s.position()
	s.since = s.now()
	s.paused = paused
}

func (s *Session) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.position()
}

func (s *Session) position() time.Duration {
	if s.current == nil {
		return 0
	}

	p := s.base
	if !s.paused {
		p += s.now().Sub(s.since)
	}

	return min(p, s.current.endPosition())
}

// SeekTo moves the current track to the absolute position, bounded by the
// played part of the track.
func (s *Session) SeekTo(position time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}

	position = max(s.current.Start, min(position, s.current.endPosition()))
	s.setPosition(position)

	log.Debug().Int64("chatId", s.ChatID).Dur("position", position).Msg("seeked session")
}

func (s *Session) setPosition(position time.Duration) {
	s.base = position
	s.since = s.now()
}

// Registry holds the sessions of all chats.
type Registry struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
	now      func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[int64]*Session), now: time.Now}
}

func (r *Registry) Find(chatID int64) (port.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[chatID]
	if !ok {
		return nil, false
	}

	return s, true
}

// Join returns the session of chatID, creating it if needed.
func (r *Registry) Join(chatID int64) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[chatID]; ok {
		return s
	}

	s := newSession(chatID, r.now)
	r.sessions[chatID] = s
	log.Info().Int64("chatId", chatID).Str("session", s.ID.String()).Msg("created playback session")

	return s
}

// Leave discards the session of chatID.
func (r *Registry) Leave(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, chatID)
}

// Enqueue adds a track to the session of chatID, joining it first if needed.
func (r *Registry) Enqueue(chatID int64, title string, length time.Duration) (port.Track, int) {
	s := r.Join(chatID)
	track := NewTrack(title, length)

	s.mu.Lock()
	ahead := len(s.queue)
	if s.current != nil {
		ahead++
	}
	s.mu.Unlock()

	s.Enqueue(track)

	return track, ahead
}
