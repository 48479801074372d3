package main

import (
	exit "os"
)

func fail() {
	exit.Exit(1)
}

type runner struct{}

func (runner) main() {
	exit.Exit(1)
}

func main() {
	runner{}.main()
	fail()
}
