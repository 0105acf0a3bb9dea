package main

import "cubes/internal/game"

func main() {
	game.RunDesktop()
}
