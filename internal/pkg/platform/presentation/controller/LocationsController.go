package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Districts served by the platform. Static for now; moves to the database
// once coverage grows past one state.
var districts = []string{
	"Ahmednagar",
	"Akola",
	"Amravati",
	"Aurangabad",
	"Beed",
	"Bhandara",
	"Buldhana",
	"Chandrapur",
	"Dhule",
	"Gadchiroli",
	"Gondia",
	"Hingoli",
	"Jalgaon",
	"Jalna",
	"Kolhapur",
	"Latur",
	"Mumbai",
	"Nagpur",
	"Nanded",
	"Nandurbar",
	"Nashik",
	"Osmanabad",
	"Palghar",
	"Parbhani",
	"Pune",
	"Raigad",
	"Ratnagiri",
	"Sangli",
	"Satara",
	"Sindhudurg",
	"Solapur",
	"Thane",
	"Wardha",
	"Washim",
	"Yavatmal",
}

// LocationsController serves the selectable district list.
type LocationsController struct{}

func NewLocationsController() *LocationsController {
	return &LocationsController{}
}

func (h *LocationsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"locations": districts})
	}
}
