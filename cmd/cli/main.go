package main

import "github.com/EddieTunji/tv-series-tracker/cmd/cli/command"

func main() {
	command.Execute()
}
