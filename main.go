package main

import (
	"github.com/abiquo/abiquo-inventory/cmd"
)

func main() {
	cmd.Execute()
}
