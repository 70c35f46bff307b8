package main

import "github.com/alexiusacademia/movload/cmd"

func main() {
	cmd.Execute()
}
