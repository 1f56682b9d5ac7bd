package storage

import (
	"sync/atomic"
	"time"

	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
)

type BadgerStore struct {
	custom    *config.Custom
	historyDB *badger.DB
	sequence  *badger.Sequence
	closing   int32
}

func NewBadgerStore(custom *config.Custom, dir string) (*BadgerStore, error) {
	historyDB, err := openDB(dir+"/history", true)
	if err != nil {
		return nil, err
	}
	seq, err := historyDB.GetSequence([]byte(historySequenceKey), 100)
	if err != nil {
		historyDB.Close()
		return nil, err
	}
	store := &BadgerStore{
		custom:    custom,
		historyDB: historyDB,
		sequence:  seq,
	}
	if custom != nil && custom.Storage.ValueLogGC {
		go store.loopValueLogGC()
	}
	return store, nil
}

func (s *BadgerStore) Close() error {
	atomic.StoreInt32(&s.closing, 1)
	err := s.sequence.Release()
	if err != nil {
		return err
	}
	return s.historyDB.Close()
}

func (s *BadgerStore) loopValueLogGC() {
	for atomic.LoadInt32(&s.closing) == 0 {
		lsm, vlog := s.historyDB.Size()
		logger.Verbosef("Badger LSM %d VLOG %d\n", lsm, vlog)
		if lsm > 1024*1024*8 || vlog > 1024*1024*32 {
			err := s.historyDB.RunValueLogGC(0.5)
			logger.Verbosef("Badger RunValueLogGC %v\n", err)
		}
		time.Sleep(5 * time.Minute)
	}
}

func openDB(dir string, sync bool) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir)
	opts = opts.WithSyncWrites(sync)
	opts = opts.WithCompression(options.None)
	opts = opts.WithBlockCacheSize(0)
	opts = opts.WithIndexCacheSize(0)
	opts = opts.WithLoggingLevel(badger.WARNING)
	return badger.Open(opts)
}
