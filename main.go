package main

import "github.com/iksnae/ai-wrapped/cmd"

func main() {
	cmd.Execute()
}
