package main

import "github/chapool/seedconv/cmd"

func main() {
	cmd.Execute()
}
