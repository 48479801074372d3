package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("starting")

	if len(os.Args) > 5 {
		os.Exit(2) // want "direct call to os.Exit in main function of package main"
	}

	func() {
		os.Exit(1) // want "direct call to os.Exit in main function of package main"
	}()

	defer fmt.Println("done")
	os.Exit(0) // want "direct call to os.Exit in main function of package main"
}
