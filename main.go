package main

import "jvminspect/cmd"

func main() {
	cmd.Execute()
}
