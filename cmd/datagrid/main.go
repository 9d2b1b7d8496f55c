package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/eeperfume/datagrid/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		help        = flag.Bool("help", false, "Show help information")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if *showVersion {
		showVersionInfo()
		return
	}

	if err := ui.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("datagrid - An interactive data grid for the terminal")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  datagrid [flags]")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -version    Show version information")
	fmt.Println("  -help       Show this help message")
	fmt.Println()
	fmt.Println("Key Bindings:")
	fmt.Println("  F1          Help")
	fmt.Println("  F2          Regenerate rows")
	fmt.Println("  F3/Enter    Inspect row")
	fmt.Println("  F4          Add row")
	fmt.Println("  F5          Copy selection")
	fmt.Println("  F6          Add column")
	fmt.Println("  F8          Delete selected rows")
	fmt.Println("  F10         Quit")
	fmt.Println()
	fmt.Println("Mouse:")
	fmt.Println("  Drag ≡              Reorder rows")
	fmt.Println("  Drag column header  Reorder columns")
	fmt.Println("  Click header        Column menu (sort, delete)")
	fmt.Println("  Click checkbox      Select row / select all")
	fmt.Println("  Double-click row    Inspect row")
}

func showVersionInfo() {
	fmt.Printf("datagrid version %s\n", version)
	fmt.Printf("Commit: %s\n", commit)
	fmt.Printf("Date: %s\n", date)
}
