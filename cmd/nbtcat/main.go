// Command nbtcat reads an NBT file and prints a formatted
// representation of it, or of a value reached by a dotted selector
// path (spec §6: "a single print <file> [selectors] command").
package main

import (
	"fmt"
	"os"

	"github.com/aetherworks/anvil/snbt"
	"github.com/aetherworks/anvil/wire"
)

func printUsage() {
	fmt.Println("Usage: nbtcat <command> <file> [selector]")
	fmt.Println("Commands:")
	fmt.Println("    print - print a tag, optionally at a dotted selector path")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements the CLI and returns the process exit code (spec §6):
// 0 success; 1 no subcommand; 2 unknown subcommand; 3 bad arguments or
// missing file; 4 selector miss.
func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	cmd := args[0]
	switch cmd {
	case "print":
		return runPrint(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		return 2
	}
}

func runPrint(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: nbtcat print <file> [selector]")
		return 3
	}
	path := args[0]
	var selector string
	if len(args) > 1 {
		selector = args[1]
	}

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "File %s does not exist\n", path)
		return 3
	}

	root, rootName, err := wire.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", path, err)
		return 3
	}

	fmt.Printf("Root name: %q\n", rootName)

	value := root
	if selector != "" {
		value, err = selectPath(root, selector)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 4
		}
	}

	fmt.Println(snbt.Print(value))
	return 0
}
