package main

import (
	"github.com/mcoot/volleydraft-go/internal/cli"
)

func main() {
	cli.Execute()
}
