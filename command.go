package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MixinNetwork/fraction/calc"
	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/MixinNetwork/fraction/rpc"
	"github.com/MixinNetwork/fraction/storage"
	"github.com/urfave/cli/v2"
)

func loadConfig(c *cli.Context) (*config.Custom, error) {
	custom := config.Default()
	if file := c.String("config"); file != "" {
		conf, err := config.Initialize(file)
		if err != nil {
			return nil, err
		}
		custom = conf
	}
	if l := c.Int("log"); l > 0 {
		custom.Logger.Level = l
	}
	if f := c.String("filter"); f != "" {
		custom.Logger.Filter = f
	}
	return custom, nil
}

func demoCmd(c *cli.Context) error {
	custom, err := loadConfig(c)
	if err != nil {
		return err
	}
	prompts := []string{
		"Numerator of fraction 1: ",
		"Denominator of fraction 1: ",
		"Numerator of fraction 2: ",
		"Denominator of fraction 2: ",
	}
	values := make([]int64, len(prompts))
	for i, p := range prompts {
		fmt.Fprint(c.App.Writer, p)
		_, err := fmt.Fscan(c.App.Reader, &values[i])
		if err != nil {
			return fmt.Errorf("read %s%w", p, err)
		}
	}
	fmt.Fprintln(c.App.Writer)

	a := common.NewRational(values[0], values[1])
	b := common.NewRational(values[2], values[3])
	return calc.NewCalculator(custom).Report(c.App.Writer, a, b)
}

func calcCmd(c *cli.Context) error {
	custom, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.Bool("strict") {
		custom.Arithmetic.Strict = true
	}
	op, err := calc.ParseOperation(c.String("op"))
	if err != nil {
		return err
	}
	a, b := readFractions(c)

	res, err := calc.NewCalculator(custom).Evaluate(op, a, b)
	if err != nil {
		return err
	}
	if res.Value != nil {
		fmt.Fprintf(c.App.Writer, "value:\t\t%s\n", res.Value)
		fmt.Fprintf(c.App.Writer, "decimal:\t%s\n", res.Decimal)
		fmt.Fprintf(c.App.Writer, "float:\t\t%s\n", calc.FormatFloat(res.Float))
	} else {
		fmt.Fprintf(c.App.Writer, "%s %s %s : %t\n", a, op.Symbol(), b, *res.Boolean)
	}

	dir := c.String("dir")
	if dir == "" {
		return nil
	}
	store, err := storage.NewBadgerStore(custom, dir)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.WriteRecord(&storage.Record{
		Operation: string(op),
		Left:      res.Left,
		Right:     res.Right,
		Value:     res.Value,
		Boolean:   res.Boolean,
	})
}

func compareCmd(c *cli.Context) error {
	custom, err := loadConfig(c)
	if err != nil {
		return err
	}
	a, b := readFractions(c)
	calculator := calc.NewCalculator(custom)
	for _, op := range calc.ComparisonOperations {
		res, err := calculator.Evaluate(op, a, b)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "%s %-2s %s : %t\n", a, op.Symbol(), b, *res.Boolean)
	}
	return nil
}

func historyCmd(c *cli.Context) error {
	custom, err := loadConfig(c)
	if err != nil {
		return err
	}
	store, err := storage.NewBadgerStore(custom, c.String("dir"))
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.ListRecords(c.Uint64("offset"), c.Uint64("count"))
	if err != nil {
		return err
	}
	for _, r := range records {
		out := fmt.Sprintf("%d\t%s\t%s\t%s", r.Sequence, r.Id, r.Operation, r.Left)
		if !calc.Operation(r.Operation).IsUnary() {
			out = out + "\t" + r.Right.String()
		}
		if r.Value != nil {
			out = out + "\t" + r.Value.String()
		} else if r.Boolean != nil {
			out = fmt.Sprintf("%s\t%t", out, *r.Boolean)
		}
		fmt.Fprintln(c.App.Writer, out)
	}
	return nil
}

func rpcCmd(c *cli.Context) error {
	custom, err := loadConfig(c)
	if err != nil {
		return err
	}
	if p := c.Int("port"); p > 0 {
		custom.RPC.Port = p
	}
	if d := c.String("dir"); d != "" {
		custom.Storage.Dir = d
	}

	var store storage.Store
	if custom.Storage.Dir != "" {
		bs, err := storage.NewBadgerStore(custom, custom.Storage.Dir)
		if err != nil {
			return err
		}
		defer bs.Close()
		store = bs
	}

	server := rpc.NewServer(custom, store, custom.RPC.Port)
	logger.Printf("RPC server listening on %s\n", server.Addr)
	return server.ListenAndServe()
}

func callCmd(c *cli.Context) error {
	var params []interface{}
	d := json.NewDecoder(strings.NewReader(c.String("params")))
	d.UseNumber()
	err := d.Decode(&params)
	if err != nil {
		return err
	}
	data, err := rpc.CallRPC(c.String("node"), c.String("method"), params)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(data))
	return nil
}

func readFractions(c *cli.Context) (common.Rational, common.Rational) {
	a := common.NewRational(c.Int64("an"), c.Int64("ad"))
	b := common.NewRational(c.Int64("bn"), c.Int64("bd"))
	return a, b
}
