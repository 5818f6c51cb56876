package main

import (
	"log"

	"meshcheck/internal/dashboard"
)

func main() {
	if err := dashboard.Render("build"); err != nil {
		log.Fatal(err)
	}
}
