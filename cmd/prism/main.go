// Command prism inspects the widget type registry and instantiates scene
// files against it.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
