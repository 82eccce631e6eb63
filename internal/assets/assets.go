package assets

import (
	_ "embed"
)

// DogeYAML is the default face image as a vector draw-command description.
//
//go:embed doge.yaml
var DogeYAML []byte
