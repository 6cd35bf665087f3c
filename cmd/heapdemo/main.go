// Command heapdemo builds a heap from integers given on the command line,
// renders it, and drains it in priority order.
//
// Usage: heapdemo [-min] [-verbose] value...
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-colorable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/JasonNaicker/goheap/pkg/binheap"
)

var (
	minHeap = flag.Bool("min", false, "build a min-heap instead of a max-heap")
	verbose = flag.Bool("verbose", false, "enable debug logging")
)

func main() {
	flag.Parse()
	installLogger()

	values := make([]int, 0, flag.NArg())
	for _, arg := range flag.Args() {
		v, err := strconv.Atoi(arg)
		if err != nil {
			zap.S().Fatalf("not an integer: %q", arg)
		}
		values = append(values, v)
	}

	polarity := binheap.Max
	if *minHeap {
		polarity = binheap.Min
	}

	h := binheap.FromSlice(polarity, values)
	zap.L().Info("built heap", zap.Object("heap", h))

	h.Render(os.Stdout)

	fmt.Print("drain order:")
	for !h.IsEmpty() {
		v, err := h.Pop()
		if err != nil {
			zap.S().Fatalf("error draining heap: %v", err)
		}
		fmt.Printf(" %d", v)
	}
	fmt.Println()
}

func installLogger() {
	// Pretty logging for console
	c := zap.NewDevelopmentEncoderConfig()
	c.EncodeLevel = zapcore.CapitalColorLevelEncoder
	c.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	if *verbose {
		level = zapcore.DebugLevel
	}

	zap.ReplaceGlobals(zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(c),
		zapcore.AddSync(colorable.NewColorableStdout()),
		level,
	)))
}
