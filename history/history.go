package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nearbench/nearbench/models"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

// ---------------------------

// Session is the persisted summary of one full benchmark pass at one
// dimensionality: mean time per (distance, size) pair. Raw timings are not
// kept, the store exists to compare runs across invocations.
type Session struct {
	Id        string
	StartedAt time.Time
	Dims      int
	MeanTimes map[string]float64
}

func NewSession(dims int) Session {
	return Session{
		Id:        uuid.New().String(),
		StartedAt: time.Now(),
		Dims:      dims,
		MeanTimes: make(map[string]float64),
	}
}

// Key identifies a (distance, size) pair within a session.
func Key(distanceName string, size int) string {
	return fmt.Sprintf("%s/%d", distanceName, size)
}

func (s Session) Record(benchmark models.Benchmark) {
	s.MeanTimes[Key(benchmark.Distance, benchmark.Size)] = benchmark.Stats.Mean
}

// Compare returns previous/current mean-time ratios for every pair present
// in both sessions. A ratio above 1 means the current run was faster.
func Compare(current, previous Session) map[string]float64 {
	ratios := make(map[string]float64)
	for key, mean := range current.MeanTimes {
		prevMean, ok := previous.MeanTimes[key]
		if !ok || mean == 0 {
			continue
		}
		ratios[key] = prevMean / mean
	}
	return ratios
}

// ---------------------------

type Store struct {
	db *bbolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0644, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open history store %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	log.Debug().Msg("closing history store")
	return s.db.Close()
}

func bucketName(dims int) []byte {
	return []byte(fmt.Sprintf("sessions%dd", dims))
}

// Fixed-width timestamp layout. RFC3339Nano trims trailing fractional
// zeros, which breaks lexicographic ordering ("...00.155Z" < "...00.15Z").
const sessionKeyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// sessionKey sorts chronologically within a bucket so Cursor().Last() is the
// most recent session.
func sessionKey(session Session) []byte {
	return []byte(session.StartedAt.UTC().Format(sessionKeyLayout) + "/" + session.Id)
}

// ---------------------------

func (s *Store) Append(session Session) error {
	value, err := msgpack.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.Id, err)
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketName(session.Dims))
		if err != nil {
			return fmt.Errorf("failed to create sessions bucket: %w", err)
		}
		return bucket.Put(sessionKey(session), value)
	})
	if err != nil {
		return fmt.Errorf("failed to store session %s: %w", session.Id, err)
	}
	return nil
}

// Last returns the most recent session recorded for dims. The second return
// value is false when none exists yet.
func (s *Store) Last(dims int) (Session, bool, error) {
	var session Session
	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName(dims))
		if bucket == nil {
			return nil
		}
		key, value := bucket.Cursor().Last()
		if key == nil {
			return nil
		}
		if err := msgpack.Unmarshal(value, &session); err != nil {
			return fmt.Errorf("failed to decode session %s: %w", string(key), err)
		}
		found = true
		return nil
	})
	return session, found, err
}
