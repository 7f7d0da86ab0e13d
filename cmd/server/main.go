package main

import "calzone/internal/app"

// @title           Calzone Pipeline Hub API
// @version         1.0
// @description     Aggregated sales-pipeline view over the order and deal backends.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
