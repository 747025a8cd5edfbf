package main

import "github.com/jcdickinson/apidocs/cmd"

func main() {
	cmd.Execute()
}
