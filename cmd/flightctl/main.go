// Command flightctl validates, inspects and exports the flight delay dataset.
package main

import (
	"os"

	"github.com/couchcryptid/flight-delay-dashboard/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
