// Command vtable serves, exports and publishes the VTable.ai landing site.
package main

import (
	"os"

	"github.com/ryanrauch/restaurant-ai-landing/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
