package source

import (
	paramcheck "github.com/reoring/paramcheck"
	drvgojson "github.com/reoring/paramcheck/source/gojson"
)

// init in a separate package to avoid import cycle in root. Blank-importing
// this package sets go-json as the default driver.
func init() { paramcheck.SetJSONDriver(drvgojson.Driver()) }
