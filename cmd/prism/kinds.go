package main

import (
	"fmt"

	"github.com/spf13/cobra"

	// Populate the registry with the builtin widget kinds.
	_ "github.com/go-drift/prism/pkg/items"
	"github.com/go-drift/prism/pkg/rtti"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the registered widget kinds",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range rtti.ItemTypeNames() {
			fmt.Println(name)
		}
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe <kind>",
	Short: "Show a widget kind's property, field, and signal tables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, ok := rtti.LookupItem(args[0])
		if !ok {
			return fmt.Errorf("unknown widget kind %q", args[0])
		}
		fmt.Println(kind.Name())
		for _, name := range kind.PropertyNames() {
			off, err := kind.PropertyOffset(name)
			if err != nil {
				return err
			}
			fmt.Printf("  property %-22s offset %d\n", name, off)
		}
		for _, name := range kind.FieldNames() {
			fmt.Printf("  field    %s\n", name)
		}
		for _, name := range kind.SignalNames() {
			fmt.Printf("  signal   %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(describeCmd)
}
