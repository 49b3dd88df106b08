package main

import "github.com/westernedge/portal/cmd/server/cmd"

func main() {
	cmd.Execute()
}
