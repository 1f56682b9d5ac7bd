package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"sync/atomic"

	"github.com/MixinNetwork/fraction/config"
	"github.com/cornelk/hashmap"
)

const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

var (
	level   int
	limiter int
	filter  *regexp.Regexp
	counter *hashmap.HashMap
	output  *log.Logger
)

func init() {
	counter = &hashmap.HashMap{}
	output = log.New(os.Stderr, "", log.LstdFlags)
	level = INFO
}

func Configure(custom *config.Custom) error {
	SetLevel(custom.Logger.Level)
	SetLimiter(custom.Logger.Limiter)
	return SetFilter(custom.Logger.Filter)
}

func SetLevel(l int) {
	level = l
}

func SetLimiter(l int) {
	limiter = l
}

func SetOutput(w io.Writer) {
	output.SetOutput(w)
}

// SetFilter takes an RE2 pattern, an empty pattern keeps everything.
func SetFilter(pattern string) error {
	if pattern == "" {
		filter = nil
		return nil
	}
	reg, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	filter = reg
	return nil
}

func Errorf(format string, v ...interface{}) {
	if level >= ERROR {
		output.Printf(format, v...)
	}
}

func Println(v ...interface{}) {
	if level >= INFO {
		output.Println(v...)
	}
}

func Printf(format string, v ...interface{}) {
	if level >= INFO {
		output.Printf(format, v...)
	}
}

func Verbosef(format string, v ...interface{}) {
	printfAtLevel(VERBOSE, format, v...)
}

func Debugf(format string, v ...interface{}) {
	printfAtLevel(DEBUG, format, v...)
}

func printfAtLevel(l int, format string, v ...interface{}) {
	if level < l {
		return
	}
	out := filterOutput(format, v...)
	if out == "" {
		return
	}
	if !limiterAvailable(out) {
		return
	}
	output.Print(out)
}

func limiterAvailable(out string) bool {
	if limiter == 0 {
		return true
	}
	var i int64
	val, _ := counter.GetOrInsert(out, &i)
	actual := (val).(*int64)
	count := atomic.AddInt64(actual, 1)
	return count <= int64(limiter)
}

func filterOutput(format string, v ...interface{}) string {
	out := fmt.Sprintf(format, v...)
	if filter == nil || filter.MatchString(out) {
		return out
	}
	return ""
}
