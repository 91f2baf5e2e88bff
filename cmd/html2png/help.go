package main

import (
	"fmt"
	"io"
)

// runHelp prints help for the requested command, or general usage.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	default:
		printUsage(env.Stdout)
	}
}

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2png [command] [flags] [input]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Render HTML files to PNG (default)")
	fmt.Fprintln(w, "  doctor     Diagnose browser and environment setup")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'html2png help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2png [convert] [flags] [input]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render HTML files to PNG using headless Chrome.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    HTML file or directory (default: input.defaultFile from config)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Capture timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --browser-bin <path>  Chrome/Chromium binary path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Capture:")
	fmt.Fprintln(w, "      --width <px>          Viewport width (default: 1400)")
	fmt.Fprintln(w, "      --height <px>         Viewport height (default: 1100)")
	fmt.Fprintln(w, "      --opaque              White background instead of transparent")
	fmt.Fprintln(w, "      --full-page           Capture full page height")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output modes:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2png doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Diagnose Chrome installation and environment setup.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  --json    Output diagnostics as JSON")
}
