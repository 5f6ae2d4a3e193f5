package main

import "cheevo-checker/cmd"

func main() {
	cmd.Execute()
}
