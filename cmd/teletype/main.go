package main

import "github.com/abdul-hamid-achik/teletype/cmd/teletype/commands"

func main() {
	commands.Execute()
}
