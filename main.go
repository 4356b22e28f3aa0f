package main

import (
	"github.com/CreditPe/CreditPe-Backend/api"
	"github.com/CreditPe/CreditPe-Backend/utils"
)

func main() {
	server := api.NewServer(utils.EnvPath)
	server.Start()
}
