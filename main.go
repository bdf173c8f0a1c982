package main

import (
	"github.com/packwiz/cursepack/cmd"

	// Modules of cursepack
	_ "github.com/packwiz/cursepack/curseforge"
	_ "github.com/packwiz/cursepack/migrate"
	_ "github.com/packwiz/cursepack/utils"
)

func main() {
	cmd.Execute()
}
