package storage

import (
	"math"
	"testing"

	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/config"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
)

func TestBadger(t *testing.T) {
	require := require.New(t)
	custom, err := config.Initialize("../config/config.example.toml")
	require.Nil(err)

	root := t.TempDir()
	store, err := NewBadgerStore(custom, root)
	require.Nil(err)
	require.NotNil(store)

	records, err := store.ListRecords(0, 10)
	require.Nil(err)
	require.Len(records, 0)

	sum := common.NewRational(5, 6)
	less := true
	inputs := []*Record{
		{Operation: "add", Left: common.NewRational(1, 2), Right: common.NewRational(1, 3), Value: &sum},
		{Operation: "lt", Left: common.NewRational(1, 3), Right: common.NewRational(1, 2), Boolean: &less},
		{Operation: "neg", Left: common.NewInteger(math.MaxInt64), Value: &sum},
	}
	for _, r := range inputs {
		err = store.WriteRecord(r)
		require.Nil(err)
		require.NotEqual(uuid.Nil, r.Id)
		require.True(r.Timestamp > 0)
	}
	require.Equal(inputs[0].Sequence+1, inputs[1].Sequence)
	require.Equal(inputs[1].Sequence+1, inputs[2].Sequence)

	records, err = store.ListRecords(0, 10)
	require.Nil(err)
	require.Len(records, 3)
	require.Equal(inputs[0].Id, records[0].Id)
	require.Equal("add", records[0].Operation)
	require.Equal("5/6", records[0].Value.String())
	require.Nil(records[0].Boolean)
	require.True(*records[1].Boolean)
	require.Nil(records[1].Value)
	require.Equal(common.NewInteger(math.MaxInt64), records[2].Left)

	records, err = store.ListRecords(inputs[1].Sequence, 10)
	require.Nil(err)
	require.Len(records, 2)
	require.Equal(inputs[1].Id, records[0].Id)
	records, err = store.ListRecords(0, 1)
	require.Nil(err)
	require.Len(records, 1)
	_, err = store.ListRecords(0, config.HistoryListLimit+1)
	require.NotNil(err)

	r, err := store.ReadRecord(inputs[1].Id)
	require.Nil(err)
	require.NotNil(r)
	require.Equal(inputs[1].Sequence, r.Sequence)
	require.Equal(common.NewRational(1, 3), r.Left)
	r, err = store.ReadRecord(uuid.Must(uuid.NewV4()))
	require.Nil(err)
	require.Nil(r)

	err = store.Close()
	require.Nil(err)

	store, err = NewBadgerStore(nil, root)
	require.Nil(err)
	defer store.Close()
	records, err = store.ListRecords(0, 10)
	require.Nil(err)
	require.Len(records, 3)
	next := &Record{Operation: "mul", Left: common.NewInteger(2), Right: common.NewInteger(3)}
	err = store.WriteRecord(next)
	require.Nil(err)
	require.True(next.Sequence > inputs[2].Sequence)
}

func TestRecordEncoding(t *testing.T) {
	require := require.New(t)

	less := true
	in := &Record{
		Id:        uuid.Must(uuid.NewV4()),
		Sequence:  7,
		Operation: "lt",
		Left:      common.NewRational(1, 3),
		Right:     common.NewRational(1, 2),
		Boolean:   &less,
		Timestamp: 1,
	}
	var out Record
	err := common.DecompressMsgpackUnmarshal(common.CompressMsgpackMarshalPanic(in), &out)
	require.Nil(err)
	require.Equal(in.Id, out.Id)
	require.Equal("lt", out.Operation)
	require.Equal(common.NewRational(1, 2), out.Right)
	require.Nil(out.Value)
	require.NotNil(out.Boolean)
	require.True(*out.Boolean)

	sum := common.NewRational(5, 6)
	in = &Record{Operation: "add", Left: common.NewRational(1, 2), Right: common.NewRational(1, 3), Value: &sum}
	out = Record{}
	err = common.DecompressMsgpackUnmarshal(common.CompressMsgpackMarshalPanic(in), &out)
	require.Nil(err)
	require.Nil(out.Boolean)
	require.Equal(sum, *out.Value)
}

func TestBadgerValueLogGC(t *testing.T) {
	require := require.New(t)
	custom, err := config.Initialize("../config/config.example.toml")
	require.Nil(err)
	custom.Storage.ValueLogGC = true

	store, err := NewBadgerStore(custom, t.TempDir())
	require.Nil(err)
	sum := common.NewRational(1, 2)
	err = store.WriteRecord(&Record{Operation: "add", Left: sum, Right: common.Zero(), Value: &sum})
	require.Nil(err)
	err = store.Close()
	require.Nil(err)
}
