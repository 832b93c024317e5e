package main

import "github.com/insightedge/insightedge-backend/cmd"

func main() {
	cmd.Execute()
}
