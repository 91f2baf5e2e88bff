package main

import (
	"fmt"
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to the requested command and returns an exit code.
// The first argument may be a command name; anything else is treated as
// input for the default convert command.
func runMain(args []string, env *Environment) int {
	cmd := "convert"
	rest := args[1:]

	if len(rest) > 0 && isCommand(rest[0]) {
		cmd = rest[0]
		rest = rest[1:]
	}

	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "html2png %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, env)
		return ExitSuccess
	case "doctor":
		return runDoctorCmd(rest, env)
	default:
		return runConvertCmd(rest, env)
	}
}

// isCommand reports whether s is a known command name.
func isCommand(s string) bool {
	switch s {
	case "convert", "doctor", "version", "help":
		return true
	}
	return false
}
