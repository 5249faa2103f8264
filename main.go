package main

import "github.com/Tanishkag23/xpense/cmd"

func main() {
	cmd.Execute()
}
