package handlers

import (
	"log"
	"sort"

	"github.com/gofiber/fiber/v2"

	"biznova/models"
	"biznova/utils"
)

const defaultRadiusKm = 5.0

// NearbyShop is a shop annotated with its distance from the customer.
type NearbyShop struct {
	models.Shop
	DistanceKm float64 `json:"distance_km"`
}

// HandleGetNearbyShops returns active shops within a radius of the given
// coordinates, nearest first.
// GET /api/v1/shops/nearby?lat=..&lng=..&radiusKm=5
func HandleGetNearbyShops(c *fiber.Ctx) error {
	lat := c.QueryFloat("lat")
	lng := c.QueryFloat("lng")
	radius := c.QueryFloat("radiusKm", defaultRadiusKm)

	if lat == 0 && lng == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "lat and lng are required"})
	}

	shops, err := shopStore.FindActive(c.Context())
	if err != nil {
		log.Printf("[SHOPS] Failed to list shops: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to retrieve shops"})
	}

	nearby := make([]NearbyShop, 0)
	for _, shop := range shops {
		distance := utils.HaversineKm(lat, lng, shop.Latitude, shop.Longitude)
		if distance <= radius {
			nearby = append(nearby, NearbyShop{Shop: shop, DistanceKm: distance})
		}
	}
	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return c.JSON(fiber.Map{"success": true, "data": nearby})
}
