// meshtool builds planet meshes offline and inspects OBJ files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string, out io.Writer) error {
	switch command {
	case "info":
		return cmdInfo(args, out)
	case "export", "x":
		return cmdExport(args, out)
	case "inspect":
		return cmdInspect(args, out)
	case "noise":
		return cmdNoise(args, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `meshtool - cube-sphere planet mesh utility

Usage:
  meshtool <command> [options]

Commands:
  info    [planet flags]                Build a planet and print geometry stats
  export  [planet flags] -o <file.obj>  Write the planet as Wavefront OBJ
          [-split] [-smooth]            One file per face; weld seam normals
  inspect <file.obj>                    Print stats for an OBJ file
  noise   [-seed N] [-scale S] [-n N]   Sample the noise layer along an axis

Planet flags:
  -config <file>  -resolution N  -noise  -scale S  -seed N  -shape sphere|cube

Examples:
  meshtool info -resolution 64 -noise
  meshtool export -resolution 32 -noise -o planet.obj
  meshtool export -resolution 32 -noise -smooth -o planet.obj
  meshtool export -split -o out/planet.obj
  meshtool inspect planet.obj`)
}
