package storage

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/config"
	"github.com/dgraph-io/badger/v3"
	"github.com/gofrs/uuid"
)

const (
	historySequenceKey  = "SEQUENCE:HISTORY"
	historyPrefixRecord = "HISTORY:RECORD:"
	historyPrefixId     = "HISTORY:ID:"
)

func (s *BadgerStore) WriteRecord(r *Record) error {
	if r.Id == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return err
		}
		r.Id = id
	}
	seq, err := s.sequence.Next()
	if err != nil {
		return err
	}
	r.Sequence = seq
	if r.Timestamp == 0 {
		r.Timestamp = uint64(time.Now().UnixNano())
	}

	return s.historyDB.Update(func(txn *badger.Txn) error {
		key := historyRecordKey(seq)
		err := txn.Set(key, common.CompressMsgpackMarshalPanic(r))
		if err != nil {
			return err
		}
		return txn.Set(historyIdKey(r.Id), key)
	})
}

func (s *BadgerStore) ReadRecord(id uuid.UUID) (*Record, error) {
	txn := s.historyDB.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(historyIdKey(id))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	key, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	item, err = txn.Get(key)
	if err != nil {
		return nil, err
	}
	v, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var r Record
	err = common.DecompressMsgpackUnmarshal(v, &r)
	return &r, err
}

func (s *BadgerStore) ListRecords(offset, count uint64) ([]*Record, error) {
	if count > config.HistoryListLimit {
		return nil, fmt.Errorf("count %d too large, the maximum is %d", count, config.HistoryListLimit)
	}
	records := make([]*Record, 0)
	txn := s.historyDB.NewTransaction(false)
	defer txn.Discard()

	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(historyPrefixRecord)
	it := txn.NewIterator(opts)
	defer it.Close()

	it.Seek(historyRecordKey(offset))
	for ; it.Valid() && uint64(len(records)) < count; it.Next() {
		v, err := it.Item().ValueCopy(nil)
		if err != nil {
			return records, err
		}
		var r Record
		err = common.DecompressMsgpackUnmarshal(v, &r)
		if err != nil {
			return records, err
		}
		records = append(records, &r)
	}
	return records, nil
}

func historyRecordKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return append([]byte(historyPrefixRecord), key...)
}

func historyIdKey(id uuid.UUID) []byte {
	return append([]byte(historyPrefixId), id.Bytes()...)
}
