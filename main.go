package main

import "github.com/yeisme/colorsift/cmd"

func main() {
	cmd.Execute()
}
