package main

import (
	"flag"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/server"
)

func main() {
	flag.Parse()
	server.Start()
}
