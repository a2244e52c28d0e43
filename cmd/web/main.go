package main

import "github.com/Vedant005/SkillBridge-Backend/internal/app"

func main() {
	app.Run()
}
