package main

import "centralbank/internal/cli"

func main() {
	cli.Execute()
}
