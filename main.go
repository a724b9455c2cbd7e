package main

import (
	"github.com/garrettborunda-lab/movefitrx-poc/api"
)

func main() {
	api.MainLoop()
}
