package main

import "github.com/romero-archive/concordia/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
