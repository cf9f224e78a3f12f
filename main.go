package main

import "github.com/Laisky/explain/cmd"

func main() {
	cmd.Execute()
}
