package main

import "embed"

//go:embed configs/tuning.yaml
var configFS embed.FS
