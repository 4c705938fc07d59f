package main

import "github.com/anything2image/gallery-api/cmd"

func main() {
	cmd.Execute()
}
