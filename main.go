package main

import "github.com/skoglund/wskeys/cmd"

func main() {
	cmd.Execute()
}
