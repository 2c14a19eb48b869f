package main

import "github.com/xvierd/tomato/cmd"

func main() {
	cmd.Execute()
}
