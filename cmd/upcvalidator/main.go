package main

import (
	"log"
	"net/http"

	"github.com/nglmq/upc-validator/internal/config"
	"github.com/nglmq/upc-validator/internal/http-server/server"
)

func main() {
	r, err := server.Start()
	if err != nil {
		log.Fatal(err)
	}

	log.Fatal(http.ListenAndServe(config.RunAddr, r))
}
