package main

//go-build: CGO_ENABLED=0

import (
	"github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/cli/sh"
)

func main() {
	sh.Main()
}
