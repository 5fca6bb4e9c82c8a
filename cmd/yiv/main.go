package main

import (
	"fmt"
	"log"
	"os"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "--version", "-v", "version":
		fmt.Printf("yiv %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	case "--help", "-h", "help":
		printUsage()
		return
	}

	// All diagnostics go to stderr; stdout carries command output.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("YIV_LOG_LEVEL") == "debug" {
		log.Printf("yiv v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("yiv %s: %v", os.Args[1], err)
	}
}

func printUsage() {
	fmt.Println("yiv - image viewer toolkit")
	fmt.Println()
	fmt.Println("Usage: yiv <command> [options] <files>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  info <file>                          Print image details as JSON")
	fmt.Println("  convert <in> <out>                   Re-encode an image (format from extension)")
	fmt.Println("  rotate [-d cw|ccw] <in> <out>        Rotate 90 degrees")
	fmt.Println("  scale -f <factor> <in> <out>         Nearest-neighbor scale")
	fmt.Println("  filter -t <name> <in> <out>          Apply grayscale, invert, brightness or contrast")
	fmt.Println("  thumb [-w N] [-h N] <in> <out>       Generate a bounded thumbnail")
	fmt.Println("  region -x N -y N -w N -h N <in> <out>  Load and save a sub-rectangle")
	fmt.Println("  sheet [-cols N] [-w N] [-h N] <out> <in>...  Compose a contact sheet")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  YIV_LOG_LEVEL=debug    Enable debug logging")
}
