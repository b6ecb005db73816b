package main

import "moyudiary/cmd/server/cmd"

func main() {
	cmd.Execute()
}
