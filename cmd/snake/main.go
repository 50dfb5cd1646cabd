package main

import (
	"math/rand"
	"time"

	"github.com/battlesnakeio/classic/cmd/snake/commands"
)

func main() {
	rand.Seed(time.Now().UnixNano())
	commands.Execute()
}
