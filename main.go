package main

import "studyplot/cmd"

func main() {
	cmd.Execute()
}
