package main

import "signup/cmd"

func main() {
	cmd.Execute()
}
