package main

import "github.com/josephlewis42/fastbash/cmd"

func main() {
	cmd.Execute()
}
