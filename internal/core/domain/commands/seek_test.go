package commands

import (
	"testing"
	"time"
	"tunebot/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playing(duration, offset, position time.Duration) *mockSession {
	return &mockSession{
		track:    &mockTrack{title: "Song", duration: duration, offset: offset},
		position: position,
	}
}

func TestSeek_Invoke(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		session   *mockSession
		wantSeeks []time.Duration
		wantReply string
	}{
		{
			name:      "no session replies queue empty",
			text:      "/seek 1:00",
			wantReply: "@bob: queueEmpty",
		},
		{
			name:      "empty queue replies queue empty",
			text:      "/seek 1:00",
			session:   &mockSession{queueEmpty: true, track: &mockTrack{duration: time.Minute}},
			wantReply: "@bob: queueEmpty",
		},
		{
			name:      "no arguments shows help",
			text:      "/seek",
			session:   playing(200*time.Second, 0, 0),
			wantReply: "helpProperUsage\n/seek [[hh:]mm:]ss\n# helpSeekCommand\n/seek 2:45:00",
		},
		{
			name:      "malformed time shows help",
			text:      "/seek abc",
			session:   playing(200*time.Second, 0, 0),
			wantReply: "helpProperUsage\n/seek [[hh:]mm:]ss\n# helpSeekCommand\n/seek 2:45:00",
		},
		{
			name:      "negative time shows help",
			text:      "/seek -5",
			session:   playing(200*time.Second, 0, 0),
			wantReply: "helpProperUsage\n/seek [[hh:]mm:]ss\n# helpSeekCommand\n/seek 2:45:00",
		},
		{
			name:      "seeks within bounds",
			text:      "/seek 2:45",
			session:   playing(200*time.Second, 0, 0),
			wantSeeks: []time.Duration{165 * time.Second},
			wantReply: "seekSuccess: Song 02:45",
		},
		{
			name:      "clamps to effective duration",
			text:      "/seek 500",
			session:   playing(200*time.Second, 0, 0),
			wantSeeks: []time.Duration{200 * time.Second},
			wantReply: "seekSuccess: Song 03:20",
		},
		{
			name:      "adds start offset",
			text:      "/seek 30",
			session:   playing(200*time.Second, 10*time.Second, 0),
			wantSeeks: []time.Duration{40 * time.Second},
			wantReply: "seekSuccess: Song 00:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := mockPlayers{}
			if tt.session != nil {
				players[42] = tt.session
			}
			ms := &MockTextSender{}
			seek := NewSeek(players, "seek")

			err := seek.Invoke(t.Context(), newInvocation(tt.text, ms))
			require.NoError(t, err)

			require.Len(t, ms.Messages, 1)
			assert.Equal(t, tt.wantReply, ms.Messages[0])
			if tt.session != nil {
				assert.Equal(t, tt.wantSeeks, tt.session.seeks)
			}
		})
	}
}

func TestSeek_HelpUsesAlias(t *testing.T) {
	ms := &MockTextSender{}
	seek := NewSeek(mockPlayers{42: playing(time.Minute, 0, 0)}, "seek", "sk")

	require.NoError(t, seek.Invoke(t.Context(), newInvocation("/sk", ms)))
	assert.Contains(t, ms.Messages[0], "/sk [[hh:]mm:]ss")
	assert.Contains(t, ms.Messages[0], "helpAliases: sk")
}

func TestSeek_Metadata(t *testing.T) {
	seek := NewSeek(mockPlayers{}, "seek", "sk", "jump")

	assert.Equal(t, "seek", seek.Name())
	assert.Equal(t, []string{"sk", "jump"}, seek.Aliases())
	assert.Equal(t, domain.PermDJ, seek.MinimumPermission())
}

func TestPlayingTrack(t *testing.T) {
	tests := []struct {
		name    string
		players mockPlayers
		wantErr bool
	}{
		{name: "no player", players: mockPlayers{}, wantErr: true},
		{name: "empty queue", players: mockPlayers{42: {queueEmpty: true}}, wantErr: true},
		{name: "queued but not started", players: mockPlayers{42: {}}, wantErr: true},
		{name: "playing", players: mockPlayers{42: playing(time.Minute, 0, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, track, err := playingTrack(tt.players, 42)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrNoSession)
				assert.Nil(t, session)
				assert.Nil(t, track)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Song", track.EffectiveTitle())
		})
	}
}
