package main

import (
	"github.com/garrettborunda-lab/movefitrx-poc/cmd/demo/command"
)

func main() {
	command.Execute()
}
