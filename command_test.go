package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/rpc"
	"github.com/stretchr/testify/require"
)

func runApp(input string, args ...string) (string, error) {
	var buf bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(input)
	app.Writer = &buf
	err := app.Run(append([]string{"fraction"}, args...))
	return buf.String(), err
}

func TestDemoCmd(t *testing.T) {
	require := require.New(t)

	out, err := runApp("1 2\n-1 -3\n", "demo")
	require.Nil(err)
	require.Contains(out, "Numerator of fraction 1: ")
	require.Contains(out, "Fraction 2: 1/3\n")
	require.Contains(out, "1/2 + 1/3 = 5/6 = 0.833333\n")
	require.Contains(out, "1/2 / 1/3 = 3/2 = 1.5\n")
	require.Contains(out, "1/2 <= 1/3 : false\n")

	out, err = runApp("4 0 2 4", "demo")
	require.Nil(err)
	require.Contains(out, "Fraction 1: 0\n")
	require.Contains(out, "0 + 1/2 = 1/2 = 0.5\n")

	out, err = runApp("3 4 0 7", "demo")
	require.Nil(err)
	require.Contains(out, "3/4 / 0 = error: division by zero\n")

	_, err = runApp("1 x", "demo")
	require.NotNil(err)
}

func TestCalcCmd(t *testing.T) {
	require := require.New(t)

	out, err := runApp("", "calc", "--op", "+", "--an", "1", "--ad", "2", "--bn", "1", "--bd", "3")
	require.Nil(err)
	require.Equal("value:\t\t5/6\ndecimal:\t0.83333333\nfloat:\t\t0.833333\n", out)

	out, err = runApp("", "calc", "--op", "lt", "--an", "1", "--ad", "3", "--bn", "1", "--bd", "2")
	require.Nil(err)
	require.Equal("1/3 < 1/2 : true\n", out)

	out, err = runApp("", "calc", "--op", "div", "--an", "1", "--ad", "2", "--bn", "0")
	require.Nil(err)
	require.Contains(out, "value:\t\t0\n")
	_, err = runApp("", "calc", "--strict", "--op", "div", "--an", "1", "--ad", "2", "--bn", "0")
	require.NotNil(err)
	_, err = runApp("", "calc", "--op", "pow")
	require.NotNil(err)

	dir := t.TempDir()
	_, err = runApp("", "calc", "--dir", dir, "--op", "mul", "--an", "2", "--ad", "3", "--bn", "3", "--bd", "4")
	require.Nil(err)
	_, err = runApp("", "calc", "--dir", dir, "--op", "neg", "--an", "2", "--ad", "3")
	require.Nil(err)
	out, err = runApp("", "history", "--dir", dir)
	require.Nil(err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(lines, 2)
	require.True(strings.HasSuffix(lines[0], "\tmul\t2/3\t3/4\t1/2"))
	require.True(strings.HasSuffix(lines[1], "\tneg\t2/3\t-2/3"))
}

func TestCompareCmd(t *testing.T) {
	require := require.New(t)

	out, err := runApp("", "compare", "--an", "-1", "--ad", "-2", "--bn", "2", "--bd", "4")
	require.Nil(err)
	require.Equal(strings.Join([]string{
		"1/2 == 1/2 : true",
		"1/2 != 1/2 : false",
		"1/2 <  1/2 : false",
		"1/2 >  1/2 : false",
		"1/2 <= 1/2 : true",
		"1/2 >= 1/2 : true",
		"",
	}, "\n"), out)

	_, err = runApp("", "--config", "./config/config.missing.toml", "compare")
	require.NotNil(err)
}

func TestCallCmd(t *testing.T) {
	require := require.New(t)

	server := httptest.NewServer(rpc.NewRouter(config.Default(), nil))
	defer server.Close()

	out, err := runApp("", "--node", server.URL, "call", "--method", "evaluate", "--params", `["mul", 9223372036854775807, 2, 2, 1]`)
	require.Nil(err)
	require.Contains(out, `"value":{"numerator":9223372036854775807,"denominator":1}`)

	_, err = runApp("", "--node", server.URL, "call", "--method", "listhistory", "--params", "[0, 10]")
	require.NotNil(err)
	_, err = runApp("", "--node", server.URL, "call", "--method", "getinfo", "--params", "[")
	require.NotNil(err)
}
