package main

import (
	"fmt"
	"os"
	"runtime"

	"pyramid-show/internal/commands"
)

// raylib must be driven from the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	reg := commands.NewRegistry("run")
	registerRun(reg)
	registerConfig(reg)
	if err := reg.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "pyramid:", err)
		os.Exit(1)
	}
}
