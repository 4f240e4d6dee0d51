package main

import "github.com/Yates-Labs/wingman/cmd"

func main() {
	cmd.Execute()
}
