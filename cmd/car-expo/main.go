// Package main is the entry point for car-expo.
package main

import (
	"os"

	"github.com/carexpo/car-expo/cmd/car-expo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
