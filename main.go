package main

import "github.com/voxboard-dev/voxboard/internal/cli"

func main() {
	cli.Execute()
}
