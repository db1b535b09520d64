package main

import "meetslot-service/cmd/schedulectl/cmd"

func main() {
	cmd.Execute()
}
