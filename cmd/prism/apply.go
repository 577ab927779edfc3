package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/prism/cmd/prism/internal/scene"
	"github.com/go-drift/prism/pkg/animation"
)

var applyOpts = struct {
	at time.Duration
}{}

var applyCmd = &cobra.Command{
	Use:   "apply <scene.yaml>",
	Short: "Build a scene file and print the resulting property values",
	Long: `Build a YAML scene file against the registered widget kinds and print
every item's property values. When the scene declares animations, --at
samples them at the given offset instead of wall-clock time.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var clock *animation.ManualClock
		if applyOpts.at > 0 {
			clock = animation.NewManualClock(time.Unix(0, 0))
			prev := animation.SetClock(clock)
			defer animation.SetClock(prev)
		}

		s, err := scene.Load(args[0])
		if err != nil {
			return err
		}
		if clock != nil {
			clock.Advance(applyOpts.at)
		}

		for _, item := range s.Items {
			fmt.Printf("%s (%s)\n", item.Name, item.Kind.Name())
			for _, name := range item.Kind.PropertyNames() {
				v, err := item.Kind.GetProperty(item.Ptr, name)
				if err != nil {
					return err
				}
				fmt.Printf("  %-22s %v\n", name, v)
			}
		}
		return nil
	},
}

func init() {
	applyCmd.Flags().DurationVar(&applyOpts.at, "at", 0, "sample animations at this offset from scene start")
	rootCmd.AddCommand(applyCmd)
}
