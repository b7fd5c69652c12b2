package main

import "github.com/finchain/fin/cmd"

func main() {
	cmd.Execute()
}
