// @title           Placement Tracker API
// @version         1.0
// @description     API для учета кампусного трудоустройства: пользователи, компании, наборы и заявки.
// @host            localhost:8000
// @BasePath        /

package main

import (
	_ "placement_backend/docs"
	"placement_backend/internal/app"
)

func main() {
	app.Run()
}
