// Command seedinventory writes a starter inventory snapshot so a fresh
// install has something on the shelves.
//
// Usage: seedinventory [path]  (default: inventory.json)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mdSHash/SleekSell/internal/persist"

	"github.com/shopspring/decimal"
)

func main() {
	path := "inventory.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	records := []persist.Record{
		{ProductID: "SKU-001", Name: "Espresso Beans 1kg", Price: decimal.NewFromFloat(18.50), Quantity: 40},
		{ProductID: "SKU-002", Name: "Ceramic Mug", Price: decimal.NewFromFloat(9.99), Quantity: 120},
		{ProductID: "SKU-003", Name: "Pour-Over Kit", Price: decimal.NewFromFloat(34.00), Quantity: 15},
		{ProductID: "SKU-004", Name: "Gift Card 25", Price: decimal.NewFromFloat(25.00), Quantity: 200},
	}

	st := persist.NewFileStore(path)
	if err := st.Save(context.Background(), records); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d products to %s\n", len(records), path)
}
