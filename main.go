package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
)

func main() {
	commands := map[string]command{
		"axes":     axesCmd(),
		"decimate": decimateCmd(),
		"report":   reportCmd(),
		"plot":     plotCmd(),
	}

	fs := flag.NewFlagSet("fwchart", flag.ExitOnError)
	cpus := fs.Int("cpus", runtime.NumCPU(), "Number of CPUs to use")

	fs.Usage = func() {
		fmt.Println("Usage: fwchart [global flags] <command> [command flags]")
		for name, cmd := range commands {
			fmt.Printf("\n%s command:\n", name)
			cmd.fs.PrintDefaults()
		}
		fmt.Printf("\nglobal flags:\n  -cpus int\n    \tNumber of CPUs to use (default %d)\n", runtime.NumCPU())
		fmt.Println(examples)
	}

	fs.Parse(os.Args[1:])

	runtime.GOMAXPROCS(*cpus)

	args := fs.Args()
	if len(args) == 0 {
		fs.Usage()
		os.Exit(1)
	}

	if cmd, ok := commands[args[0]]; !ok {
		log.Fatalf("Unknown command: %s", args[0])
	} else if err := cmd.fn(args[1:]); err != nil {
		log.Fatal(err)
	}
}

const examples = `
examples:
  fwchart axes -domain=3:97 -density=5 -width=800
  cat samples.json | fwchart decimate -width=640 -height=480 > points.json
  fwchart report -estimator=tdigest samples.csv
  cat samples.json | fwchart plot -title="Latency" -time > plot.html`

type command struct {
	fs *flag.FlagSet
	fn func(args []string) error
}
