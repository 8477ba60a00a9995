package depositrepo

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/tuncanbit/txe/internal/domain"
)

const bucketName = "deposits"

// BoltDepositRepository spills the deposit record index to a BoltDB file so
// the working memory stays bounded no matter how many deposits the log
// carries. Lookups trade a disk read per dispute-family event for that bound;
// the output is identical to the in-memory index. The database file is
// scratch space for one replay, removed on Close.
type BoltDepositRepository struct {
	db   *bolt.DB
	path string
}

// NewBolt opens a fresh index database at dir. An empty dir uses the system
// temp directory.
func NewBolt(dir string) (IDepositRepository, error) {
	file, err := os.CreateTemp(dir, "txe-deposit-index-*.db")
	if err != nil {
		return nil, fmt.Errorf("failed to create index file: %w", err)
	}
	path := file.Name()
	file.Close()

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to open index database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		os.Remove(path)
		return nil, fmt.Errorf("failed to create index bucket: %w", err)
	}

	return &BoltDepositRepository{db: db, path: path}, nil
}

func (r *BoltDepositRepository) Get(tx domain.TxID) (*domain.DepositRecord, error) {
	var record domain.DepositRecord

	err := r.db.View(func(btx *bolt.Tx) error {
		b := btx.Bucket([]byte(bucketName))
		v := b.Get(txKey(tx))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &record)
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *BoltDepositRepository) Put(tx domain.TxID, record *domain.DepositRecord) error {
	return r.db.Update(func(btx *bolt.Tx) error {
		b := btx.Bucket([]byte(bucketName))
		if b.Get(txKey(tx)) != nil {
			return ErrDuplicateTx
		}
		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		return b.Put(txKey(tx), data)
	})
}

func (r *BoltDepositRepository) SetStatus(tx domain.TxID, status domain.DepositStatus) error {
	return r.db.Update(func(btx *bolt.Tx) error {
		b := btx.Bucket([]byte(bucketName))
		v := b.Get(txKey(tx))
		if v == nil {
			return ErrNotFound
		}
		var record domain.DepositRecord
		if err := json.Unmarshal(v, &record); err != nil {
			return err
		}
		record.Status = status
		data, err := json.Marshal(&record)
		if err != nil {
			return err
		}
		return b.Put(txKey(tx), data)
	})
}

func (r *BoltDepositRepository) Close() error {
	err := r.db.Close()
	os.Remove(r.path)
	return err
}

func txKey(tx domain.TxID) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, uint32(tx))
	return key
}
