package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/MixinNetwork/fraction/calc"
	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/MixinNetwork/fraction/storage"
	"github.com/gofrs/uuid"
)

func (impl *RPC) getInfo() map[string]interface{} {
	return map[string]interface{}{
		"version":   config.BuildVersion,
		"strict":    impl.calculator.Strict,
		"precision": impl.calculator.Precision,
		"history":   impl.store != nil,
	}
}

// evaluate takes [op, an, ad, bn, bd], unary operations may omit bn and bd.
func (impl *RPC) evaluate(params []interface{}) (json.RawMessage, error) {
	if len(params) != 3 && len(params) != 5 {
		return nil, errors.New("invalid params count")
	}
	op, err := calc.ParseOperation(fmt.Sprint(params[0]))
	if err != nil {
		return nil, err
	}
	if len(params) == 3 && !op.IsUnary() {
		return nil, errors.New("invalid params count")
	}
	a, err := parseRational(params[1], params[2])
	if err != nil {
		return nil, err
	}
	b := common.Zero()
	if len(params) == 5 {
		b, err = parseRational(params[3], params[4])
		if err != nil {
			return nil, err
		}
	}

	key := common.MsgpackMarshalPanic([]interface{}{impl.calculator.Strict, impl.calculator.Precision, op, a, b})
	if data, found := impl.cache.HasGet(nil, key); found {
		logger.Debugf("RPC evaluate cache hit %s %s %s\n", a, op, b)
		return data, impl.record(op, a, b, data)
	}

	res, err := impl.calculator.Evaluate(op, a, b)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(res)
	if err != nil {
		return nil, err
	}
	impl.cache.Set(key, data)
	return data, impl.record(op, a, b, data)
}

// report takes [an, ad, bn, bd] and evaluates every binary operation.
func (impl *RPC) report(params []interface{}) ([]map[string]interface{}, error) {
	if len(params) != 4 {
		return nil, errors.New("invalid params count")
	}
	a, err := parseRational(params[0], params[1])
	if err != nil {
		return nil, err
	}
	b, err := parseRational(params[2], params[3])
	if err != nil {
		return nil, err
	}

	ops := append(append([]calc.Operation{}, calc.ArithmeticOperations...), calc.ComparisonOperations...)
	results := make([]map[string]interface{}, len(ops))
	for i, op := range ops {
		item := map[string]interface{}{"operation": op}
		res, err := impl.calculator.Evaluate(op, a, b)
		if err != nil {
			item["error"] = err.Error()
		} else if res.Value != nil {
			item["value"] = res.Value
			item["float"] = res.Float
			item["decimal"] = res.Decimal
		} else {
			item["boolean"] = *res.Boolean
		}
		results[i] = item
	}
	return results, nil
}

func (impl *RPC) listHistory(params []interface{}) ([]*storage.Record, error) {
	if impl.store == nil {
		return nil, errors.New("history disabled")
	}
	if len(params) != 2 {
		return nil, errors.New("invalid params count")
	}
	offset, err := strconv.ParseUint(fmt.Sprint(params[0]), 10, 64)
	if err != nil {
		return nil, err
	}
	count, err := strconv.ParseUint(fmt.Sprint(params[1]), 10, 64)
	if err != nil {
		return nil, err
	}
	return impl.store.ListRecords(offset, count)
}

func (impl *RPC) getHistory(params []interface{}) (*storage.Record, error) {
	if impl.store == nil {
		return nil, errors.New("history disabled")
	}
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	id, err := uuid.FromString(fmt.Sprint(params[0]))
	if err != nil {
		return nil, err
	}
	return impl.store.ReadRecord(id)
}

func (impl *RPC) record(op calc.Operation, a, b common.Rational, data []byte) error {
	if impl.store == nil {
		return nil
	}
	var res calc.Result
	err := json.Unmarshal(data, &res)
	if err != nil {
		return err
	}
	return impl.store.WriteRecord(&storage.Record{
		Operation: string(op),
		Left:      a,
		Right:     res.Right,
		Value:     res.Value,
		Boolean:   res.Boolean,
	})
}

func parseRational(num, den interface{}) (common.Rational, error) {
	n, err := strconv.ParseInt(fmt.Sprint(num), 10, 64)
	if err != nil {
		return common.Rational{}, err
	}
	d, err := strconv.ParseInt(fmt.Sprint(den), 10, 64)
	if err != nil {
		return common.Rational{}, err
	}
	return common.NewRational(n, d), nil
}
