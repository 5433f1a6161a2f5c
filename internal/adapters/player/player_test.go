package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestRegistry() (*Registry, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	r := NewRegistry()
	r.now = clock.now
	return r, clock
}

func TestTrack_EffectiveDuration(t *testing.T) {
	tests := []struct {
		name  string
		track Track
		want  time.Duration
	}{
		{"whole source", Track{Length: 3 * time.Minute}, 3 * time.Minute},
		{"start offset", Track{Length: 3 * time.Minute, Start: time.Minute}, 2 * time.Minute},
		{"start and end", Track{Length: 3 * time.Minute, Start: time.Minute, End: 90 * time.Second}, 30 * time.Second},
		{"end past length", Track{Length: time.Minute, End: time.Hour}, time.Minute},
		{"start past end", Track{Length: time.Minute, Start: 2 * time.Minute}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.track.EffectiveDuration())
		})
	}
}

func TestRegistry_JoinFindLeave(t *testing.T) {
	r, _ := newTestRegistry()

	_, ok := r.Find(1)
	assert.False(t, ok)

	s := r.Join(1)
	assert.Same(t, s, r.Join(1))

	found, ok := r.Find(1)
	require.True(t, ok)
	assert.Same(t, s, found)

	r.Leave(1)
	_, ok = r.Find(1)
	assert.False(t, ok)
}

func TestSession_Playback(t *testing.T) {
	r, clock := newTestRegistry()
	s := r.Join(1)

	assert.True(t, s.IsQueueEmpty())
	_, ok := s.PlayingTrack()
	assert.False(t, ok)

	first := NewTrack("first", 3*time.Minute)
	first.Start = 10 * time.Second
	second := NewTrack("second", time.Minute)
	s.Enqueue(first, second)

	track, ok := s.PlayingTrack()
	require.True(t, ok)
	assert.Equal(t, "first", track.EffectiveTitle())
	assert.Equal(t, 10*time.Second, s.Position())

	clock.advance(20 * time.Second)
	assert.Equal(t, 30*time.Second, s.Position())

	s.SetPaused(true)
	clock.advance(time.Minute)
	assert.Equal(t, 30*time.Second, s.Position())

	s.SetPaused(false)
	clock.advance(5 * time.Second)
	assert.Equal(t, 35*time.Second, s.Position())

	clock.advance(time.Hour)
	assert.Equal(t, 3*time.Minute, s.Position())

	skipped, ok := s.Skip()
	require.True(t, ok)
	assert.Equal(t, "first", skipped.EffectiveTitle())

	track, ok = s.PlayingTrack()
	require.True(t, ok)
	assert.Equal(t, "second", track.EffectiveTitle())
	assert.Equal(t, time.Duration(0), s.Position())

	_, ok = s.Skip()
	require.True(t, ok)
	assert.True(t, s.IsQueueEmpty())

	_, ok = s.Skip()
	assert.False(t, ok)
}

func TestSession_SeekTo(t *testing.T) {
	r, _ := newTestRegistry()
	s := r.Join(1)

	s.SeekTo(time.Minute)
	assert.Equal(t, time.Duration(0), s.Position())

	track := NewTrack("song", 3*time.Minute)
	track.Start = 30 * time.Second
	s.Enqueue(track)

	s.SeekTo(time.Minute)
	assert.Equal(t, time.Minute, s.Position())

	s.SeekTo(time.Hour)
	assert.Equal(t, 3*time.Minute, s.Position())

	s.SeekTo(0)
	assert.Equal(t, 30*time.Second, s.Position())
}

func TestRegistry_Enqueue(t *testing.T) {
	r, _ := newTestRegistry()

	track, ahead := r.Enqueue(7, "first", time.Minute)
	assert.Equal(t, "first", track.EffectiveTitle())
	assert.Equal(t, 0, ahead)

	_, ahead = r.Enqueue(7, "second", time.Minute)
	assert.Equal(t, 1, ahead)

	s, ok := r.Find(7)
	require.True(t, ok)
	playing, ok := s.PlayingTrack()
	require.True(t, ok)
	assert.Equal(t, "first", playing.EffectiveTitle())
}
