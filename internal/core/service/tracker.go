package service

import (
	"context"
	"fmt"
	"sync"
	"time"
	"tunebot/internal/core/domain"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Tracker interface {
	// Reserve counts one use for chatID, or returns domain.ErrLimitReached
	// without counting when the daily limit is used up.
	Reserve(ctx context.Context, chatID int64) error
	// Release gives back a reserved use that did not happen.
	Release(chatID int64)
}

// UsageTracker counts requests per chat and resets the counts at midnight.
// A daily limit of zero or less disables the check.
type UsageTracker struct {
	chats      map[int64]int
	dailyLimit int
	mutex      *sync.Mutex
}

func NewUsageTracker(ctx context.Context) *UsageTracker {
	ut := &UsageTracker{
		chats:      make(map[int64]int),
		dailyLimit: viper.GetInt("ask.daily_limit"),
		mutex:      &sync.Mutex{},
	}

	go ut.ResetDailyLimit(ctx)

	return ut
}

func (t *UsageTracker) Reserve(_ context.Context, chatID int64) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	used := t.chats[chatID]
	if t.dailyLimit > 0 && used >= t.dailyLimit {
		log.Debug().Int64("chatId", chatID).Int("used", used).Msg("daily limit exceeded")
		return fmt.Errorf("chat %d used %d of %d: %w", chatID, used, t.dailyLimit, domain.ErrLimitReached)
	}

	t.chats[chatID] = used + 1

	return nil
}

func (t *UsageTracker) Release(chatID int64) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.chats[chatID] > 0 {
		t.chats[chatID]--
	}
}

func (t *UsageTracker) ResetDailyLimit(ctx context.Context) {
	reset := getNextResetTime()

	for {
		log.Debug().Time("reset", reset).Msg("running reset timer")
		select {
		case <-time.After(time.Until(reset)):
			log.Debug().Msg("resetting daily limit")
			t.mutex.Lock()
			t.chats = make(map[int64]int)
			t.mutex.Unlock()
			time.Sleep(time.Second)
			reset = getNextResetTime()
		case <-ctx.Done():
			log.Debug().Msg("stopping daily limit reset")
			return
		}
	}
}

func getNextResetTime() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
}
