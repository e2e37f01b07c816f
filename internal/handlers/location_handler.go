package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"curaone-backend/internal/geo"
	"curaone-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Geo is the shared geocoding/POI client.
var Geo = geo.NewClient()

// NearbyHospitals finds hospitals around the given city.
func NearbyHospitals(c *gin.Context) {
	nearbyByCity(c, geo.KindHospital)
}

// NearbyLabs finds diagnostic labs around the given city.
func NearbyLabs(c *gin.Context) {
	nearbyByCity(c, geo.KindLab)
}

// NearbyPlaces is the generic variant; kind comes from the query string.
func NearbyPlaces(c *gin.Context) {
	nearbyByCity(c, c.DefaultQuery("kind", geo.KindHospital))
}

func nearbyByCity(c *gin.Context, kind string) {
	city := c.Query("city")
	if city == "" {
		utils.APIResponse(c, http.StatusBadRequest, false, "City is required", nil)
		return
	}

	coords, err := Geo.ResolveCity(c.Request.Context(), city)
	if err != nil {
		if errors.Is(err, geo.ErrNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, fmt.Sprintf("Could not find %q", city), nil)
			return
		}
		utils.APIResponse(c, http.StatusBadGateway, false, "Location service unavailable, try again", nil)
		return
	}

	places, err := Geo.FindNearby(c.Request.Context(), kind, coords.Lat, coords.Lon, geo.DefaultRadiusMeters)
	if err != nil {
		if errors.Is(err, geo.ErrUnknownKind) {
			utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
			return
		}
		utils.APIResponse(c, http.StatusBadGateway, false, "Location service unavailable, try again", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, fmt.Sprintf("%d results near %s", len(places), city), gin.H{
		"city":   city,
		"coords": coords,
		"places": places,
	})
}

// GetDirections builds an external map link from the caller's position to a
// destination. No network call involved.
func GetDirections(c *gin.Context) {
	for _, param := range []string{"origin_lat", "origin_lon", "dest_lat", "dest_lon"} {
		if c.Query(param) == "" {
			utils.APIResponse(c, http.StatusBadRequest, false, param+" is required", nil)
			return
		}
	}

	url := geo.DirectionsURL(
		utils.StringToFloat(c.Query("origin_lat")),
		utils.StringToFloat(c.Query("origin_lon")),
		utils.StringToFloat(c.Query("dest_lat")),
		utils.StringToFloat(c.Query("dest_lon")),
	)
	utils.APIResponse(c, http.StatusOK, true, "Directions link", gin.H{"url": url})
}
