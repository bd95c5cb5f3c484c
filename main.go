package main

import "github.com/sakibahmad/schemabridge/cmd"

func main() {
	cmd.Execute()
}
