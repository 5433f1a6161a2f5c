package commands

import (
	"context"
	"fmt"
	"strings"
	"time"
	"tunebot/internal/core/domain"
	"tunebot/internal/core/domain/command"
	"tunebot/internal/core/port"
)

type MockTextSender struct {
	err      error
	Messages []string
	actions  int
}

func (m *MockTextSender) SendMessageReply(_ context.Context, _ *domain.Message, message string) (int, error) {
	m.Messages = append(m.Messages, message)
	return len(m.Messages), m.err
}

func (m *MockTextSender) NotifyAndReturnError(_ context.Context, err error, _ *domain.Message) error {
	m.Messages = append(m.Messages, err.Error())
	if m.err != nil {
		return m.err
	}
	return err
}

func (m *MockTextSender) SendChatAction(_ context.Context, _ int64, _ domain.Action) {
	m.actions++
}

// MockTranslator renders "key: arg1 arg2".
type MockTranslator struct{}

func (MockTranslator) Translate(key string, args ...any) string {
	if len(args) == 0 {
		return key
	}

	return key + ": " + strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

type mockTrack struct {
	title    string
	duration time.Duration
	offset   time.Duration
}

func (t *mockTrack) EffectiveDuration() time.Duration { return t.duration }
func (t *mockTrack) StartOffset() time.Duration       { return t.offset }
func (t *mockTrack) EffectiveTitle() string           { return t.title }

type mockSession struct {
	queueEmpty bool
	track      *mockTrack
	position   time.Duration
	seeks      []time.Duration
}

func (s *mockSession) IsQueueEmpty() bool { return s.queueEmpty }

func (s *mockSession) PlayingTrack() (port.Track, bool) {
	if s.track == nil {
		return nil, false
	}
	return s.track, true
}

func (s *mockSession) Position() time.Duration { return s.position }

func (s *mockSession) SeekTo(position time.Duration) {
	s.seeks = append(s.seeks, position)
	s.position = position
}

func (s *mockSession) Skip() (port.Track, bool) {
	if s.track == nil {
		return nil, false
	}
	skipped := s.track
	s.track = nil
	s.queueEmpty = true
	return skipped, true
}

type mockPlayers map[int64]*mockSession

func (m mockPlayers) Find(chatID int64) (port.Session, bool) {
	s, ok := m[chatID]
	if !ok {
		return nil, false
	}
	return s, true
}

type mockStore struct {
	masks map[int64]domain.ModuleMask
	err   error
	saved int
}

func (m *mockStore) EnabledModules(_ context.Context, chatID int64) (domain.ModuleMask, error) {
	if m.err != nil {
		return 0, m.err
	}
	if mask, ok := m.masks[chatID]; ok {
		return mask, nil
	}
	return domain.DefaultModules, nil
}

func (m *mockStore) SetEnabledModules(_ context.Context, chatID int64, mask domain.ModuleMask) error {
	if m.err != nil {
		return m.err
	}
	if m.masks == nil {
		m.masks = make(map[int64]domain.ModuleMask)
	}
	m.masks[chatID] = mask
	m.saved++
	return nil
}

func newInvocation(text string, sender *MockTextSender) *command.Invocation {
	return command.NewInvocation(
		&domain.Message{ID: 1, ChatID: 42, UserID: 7, Username: "@bob", Text: text},
		"/", sender, MockTranslator{})
}

type queued struct {
	chatID int64
	title  string
	length time.Duration
}

type mockQueue struct {
	queued []queued
}

func (q *mockQueue) Enqueue(chatID int64, title string, length time.Duration) (port.Track, int) {
	q.queued = append(q.queued, queued{chatID: chatID, title: title, length: length})
	return &mockTrack{title: title, duration: length}, len(q.queued) - 1
}
