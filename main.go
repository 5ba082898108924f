package main

import "github.com/yamanjr10/deskdash/cmd"

func main() {
	cmd.Execute()
}
