package main

import (
	"os"

	"github.com/atelierpage/traduire/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
