package main

import "github.com/depshield-user-testing/sis/cmd/gridcut/cmd"

func main() {
	cmd.Execute()
}
