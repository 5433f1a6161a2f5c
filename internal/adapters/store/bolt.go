package store

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"
	"tunebot/internal/core/domain"

	"github.com/rs/zerolog/log"
	"go.etcd.io/bbolt"
)

const bucketModules = "modules"

// Bolt persists the enabled modules of each chat in a bbolt file.
type Bolt struct {
	db *bbolt.DB
}

// OpenBolt opens or creates the database at path and prepares its buckets.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening module store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketModules))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating module bucket: %w", err)
	}

	log.Info().Str("path", path).Msg("opened module store")

	return &Bolt{db: db}, nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

// EnabledModules returns the stored mask of chatID, or the default modules
// when the chat never changed them.
func (b *Bolt) EnabledModules(_ context.Context, chatID int64) (domain.ModuleMask, error) {
	mask := domain.DefaultModules

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketModules))
		if bucket == nil {
			return fmt.Errorf("bucket %s not found", bucketModules)
		}

		v := bucket.Get(chatKey(chatID))
		if v == nil {
			return nil
		}
		if len(v) != 8 {
			return fmt.Errorf("corrupt module mask for chat %d", chatID)
		}

		mask = domain.ModuleMask(binary.BigEndian.Uint64(v))
		return nil
	})
	if err != nil {
		return 0, err
	}

	return mask, nil
}

func (b *Bolt) SetEnabledModules(_ context.Context, chatID int64, mask domain.ModuleMask) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketModules))
		if bucket == nil {
			return fmt.Errorf("bucket %s not found", bucketModules)
		}

		return bucket.Put(chatKey(chatID), binary.BigEndian.AppendUint64(nil, uint64(mask)))
	})
	if err != nil {
		return fmt.Errorf("saving modules of chat %d: %w", chatID, err)
	}

	log.Debug().Int64("chatId", chatID).Uint64("mask", uint64(mask)).Msg("saved enabled modules")

	return nil
}

func chatKey(chatID int64) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(chatID))
}
