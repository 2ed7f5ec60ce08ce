// lscell lists USB-attached SX1302 concentrator boards
package main

import (
	"fmt"
	"os"

	"github.com/google/gousb"
	"github.com/tferrand/gocell/pkg/concentrator"
)

func main() {
	ctx := gousb.NewContext()
	defer ctx.Close()

	boards, err := concentrator.DiscoverBoards(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to enumerate devices: %v\n", err)
		os.Exit(1)
	}

	if len(boards) == 0 {
		fmt.Println("No concentrator boards found")
		return
	}

	fmt.Printf("Found %d concentrator board(s):\n\n", len(boards))
	for i, board := range boards {
		fmt.Printf("Board %d:\n", i+1)
		fmt.Printf("  Description: %s\n", board.Description)
		fmt.Printf("  USB ID:      %04x:%04x\n", board.VendorID, board.ProductID)
		fmt.Printf("  Location:    bus %d address %d\n", board.Bus, board.Address)
		fmt.Println()
	}
}
