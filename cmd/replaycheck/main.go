package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/fightcore/logger"
	"github.com/milk9111/fightcore/sim"
)

func main() {
	runs := flag.Int("runs", 2, "number of independent re-simulations to compare")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: replaycheck [-runs n] file.replay")
		os.Exit(2)
	}
	if *runs < 1 {
		log.Fatal("-runs must be at least 1")
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	logger.Init(logger.Config{Level: "warn"})

	var first [][]byte
	for run := 0; run < *runs; run++ {
		sums, err := sim.Replay(bytes.NewReader(data))
		if err != nil {
			log.Fatalf("run %d: %v", run, err)
		}
		if run == 0 {
			first = sums
			continue
		}
		if tick, ok := diverged(first, sums); ok {
			log.Fatalf("run %d diverged from run 0 at tick %d", run, tick)
		}
	}
	fmt.Printf("ok: %d ticks, %d runs, final %x\n", len(first), *runs, last(first))
}

func diverged(a, b [][]byte) (int, bool) {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if !bytes.Equal(a[i], b[i]) {
			return i, true
		}
	}
	if len(a) != len(b) {
		return n, true
	}
	return 0, false
}

func last(sums [][]byte) []byte {
	if len(sums) == 0 {
		return nil
	}
	return sums[len(sums)-1]
}
