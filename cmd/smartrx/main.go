package main

import "smartrx-client/cmd/smartrx/command"

func main() {
	command.Execute()
}
