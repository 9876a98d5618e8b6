// Command tourplan plans guided tours over a mission file.
//
//	tourplan plan -f mission.yaml [--json] [--strict]
//	tourplan search -f mission.yaml --from 1 --to 9 [--guide 1,2,3] [--forbid 5]
//	tourplan nearest -f mission.yaml --x 120 --y 340 [-k 3]
//	tourplan validate -f mission.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "tourplan:", err)
		os.Exit(1)
	}
}
