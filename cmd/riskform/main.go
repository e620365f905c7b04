package main

import "github.com/goliatone/go-riskform/internal/cli"

func main() {
	cli.Execute()
}
