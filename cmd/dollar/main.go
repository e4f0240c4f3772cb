package main

import "github.com/ThatOtherAndrew/dollar/cmd"

func main() {
	cmd.Execute()
}
