package storage

import (
	"github.com/MixinNetwork/fraction/common"
	"github.com/gofrs/uuid"
)

// Record is one evaluated operation. Value is set for arithmetic and
// Boolean for comparisons, the unset one is left out of the encoding.
type Record struct {
	Id        uuid.UUID        `json:"id"`
	Sequence  uint64           `json:"sequence"`
	Operation string           `json:"operation"`
	Left      common.Rational  `json:"left"`
	Right     common.Rational  `json:"right"`
	Value     *common.Rational `json:"value,omitempty" msgpack:",omitempty"`
	Boolean   *bool            `json:"boolean,omitempty" msgpack:",omitempty"`
	Timestamp uint64           `json:"timestamp"`
}

type Store interface {
	Close() error

	WriteRecord(r *Record) error
	ReadRecord(id uuid.UUID) (*Record, error)
	ListRecords(offset, count uint64) ([]*Record, error)
}
