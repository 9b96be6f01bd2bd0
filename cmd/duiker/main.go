package main

import (
	"github.com/duiker-sh/duiker/internal/cli"
)

func main() {
	cli.Execute()
}
