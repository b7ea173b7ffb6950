package main

// @title Cars Insurance API
// @version 1.0
// @description Insurance policies, claims and expiry tracking for registered cars.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	Execute()
}
