package main

import "github.com/notargets/lwrtraffic/cmd"

func main() {
	cmd.Execute()
}
