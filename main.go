package main

import "github.com/douhashi/tsugi/cmd"

func main() {
	cmd.Execute()
}
