package controllers

import (
	"github.com/blogem/visit-logger/services"
)

// Controllers holds all controller instances
type Controllers struct {
	Home   *HomeController
	Health *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		Home:   NewHomeController(services),
		Health: NewHealthController(),
	}
}
