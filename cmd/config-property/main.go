package main

import "github.com/oshokin/config-property/cmd/config-property/cmd"

func main() {
	cmd.Execute()
}
