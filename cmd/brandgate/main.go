// Command brandgate rewrites type-checker diagnostics offline, using the same
// rule set the gateway service applies to backend results.
//
//	tsc-json-dump | brandgate rewrite -
//	brandgate explain diagnostics.json
//	brandgate rules --profile prod
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
