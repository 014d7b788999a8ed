package main

import "github.com/timvw/tmux-fragments/cmd"

func main() {
	cmd.Execute()
}
