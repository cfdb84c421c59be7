package main

import "github.com/twiced-technology-gmbh/taskreport/cmd"

func main() {
	cmd.Execute()
}
