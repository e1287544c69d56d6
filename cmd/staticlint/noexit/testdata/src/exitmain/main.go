package main

import (
	"log"
	"os"
	xos "os"
)

func main() {
	if len(os.Args) > 5 {
		os.Exit(2) // want "вызов os.Exit в функции main запрещён"
	}
	defer xos.Exit(3) // want "вызов os.Exit в функции main запрещён"
	log.Println("ok")
	helper()
}

func helper() {
	os.Exit(0)
}
