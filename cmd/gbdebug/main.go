// Command gbdebug loads a ROM image into a fresh core and either free-runs
// it to completion (or failure), or drops into an interactive
// single-instruction-step debugger.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/module/lr35902/cpu"
)

func main() {
	romPath := flag.String("rom", "", "path to a raw ROM image")
	debug := flag.Bool("debug", false, "launch the interactive step debugger instead of free-running")
	maxCycles := flag.Uint64("cycles", 0, "stop free-running after this many clock ticks (0 means unbounded)")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("gbdebug: -rom is required")
	}

	rom, err := os.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("gbdebug: reading ROM: %v", err)
	}

	core := cpu.New()
	if err := core.LoadROM(rom); err != nil {
		log.Fatalf("gbdebug: loading ROM: %v", err)
	}

	if *debug {
		if err := runDebugger(core); err != nil {
			log.Printf("gbdebug: core halted with error: %v", err)
		}
		return
	}

	var ticks uint64
	for {
		if *maxCycles != 0 && ticks >= *maxCycles {
			log.Printf("gbdebug: cycle budget of %d reached", *maxCycles)
			break
		}
		if err := core.Clock(); err != nil {
			log.Printf("gbdebug: core halted: %v", err)
			break
		}
		ticks++
		if core.Halted {
			log.Print("gbdebug: core reached HALT")
			break
		}
		if core.Stopped {
			log.Print("gbdebug: core reached STOP")
			break
		}
	}
	snap := core.Snapshot()
	log.Printf("gbdebug: final state: PC=%04X SP=%04X AF=%04X BC=%04X DE=%04X HL=%04X",
		snap.PC, snap.SP, snap.AF, snap.BC, snap.DE, snap.HL)
}
