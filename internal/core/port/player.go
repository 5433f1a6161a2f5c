package port

import "time"

// Players locates the playback session of a chat. Implementations own all
// per-session locking; callers may use a Session from many goroutines.
type Players interface {
	// Find returns the session for chatID, if one exists.
	Find(chatID int64) (Session, bool)
}

type Session interface {
	// IsQueueEmpty reports whether there is neither a playing nor a queued track.
	IsQueueEmpty() bool
	// PlayingTrack returns the track currently being played.
	PlayingTrack() (Track, bool)
	// Position returns the absolute position within the playing track.
	Position() time.Duration
	// SeekTo moves playback of the current track to the absolute position.
	SeekTo(position time.Duration)
	// Skip drops the playing track, starts the next queued one and returns the skipped track.
	Skip() (Track, bool)
}

type Track interface {
	// EffectiveDuration is the playable length, which may be shorter than the source when a start offset is set.
	EffectiveDuration() time.Duration
	// StartOffset is where playback of the source begins.
	StartOffset() time.Duration
	// EffectiveTitle is the human-readable label of the track.
	EffectiveTitle() string
}

// Queue adds tracks to the session of a chat, creating the session on demand.
type Queue interface {
	// Enqueue appends a track and returns it with the number of tracks ahead of it.
	Enqueue(chatID int64, title string, length time.Duration) (Track, int)
}
