package main

import "supply-ledger/cmd"

func main() {
	cmd.Execute()
}
