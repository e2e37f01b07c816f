package handlers

import (
	"net/http"

	"curaone-backend/internal/cart"
	"curaone-backend/internal/config"
	"curaone-backend/internal/models"
	"curaone-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Carts holds the per-user lab order carts for this process. Carts are
// session state; they do not survive a restart.
var Carts = cart.NewRegistry()

// SearchLabTests filters the catalog by name substring and category.
func SearchLabTests(c *gin.Context) {
	var tests []models.LabTest
	if err := config.DB.Preload("Prices").Find(&tests).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to load catalog", nil)
		return
	}

	filtered := cart.FilterTests(tests, c.Query("q"), c.Query("category"))
	utils.APIResponse(c, http.StatusOK, true, "Lab tests", filtered)
}

// AddToCart snapshots a lab's offer into the caller's cart.
func AddToCart(c *gin.Context) {
	userID := c.GetUint64("userID")

	var input models.AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid cart input", err.Error())
		return
	}

	var test models.LabTest
	if err := config.DB.Preload("Prices").First(&test, input.TestID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Lab test not found", nil)
		return
	}

	item := Carts.Get(userID).Add(test, input.Lab, input.Price)
	utils.APIResponse(c, http.StatusCreated, true, "Added to cart", item)
}

// GetCart returns the cart contents with totals in USD and formatted INR.
func GetCart(c *gin.Context) {
	userCart := Carts.Get(c.GetUint64("userID"))

	total := userCart.Total()
	savings := userCart.TotalSavings()

	utils.APIResponse(c, http.StatusOK, true, "Your cart", gin.H{
		"items":             userCart.Items(),
		"total":             total,
		"total_savings":     savings,
		"total_inr":         cart.FormatCurrency(total, "INR"),
		"total_savings_inr": cart.FormatCurrency(savings, "INR"),
	})
}

// RemoveFromCart drops one item by its composite id.
func RemoveFromCart(c *gin.Context) {
	userCart := Carts.Get(c.GetUint64("userID"))

	if !userCart.Remove(c.Param("id")) {
		utils.APIResponse(c, http.StatusNotFound, false, "Item not in cart", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Removed from cart", nil)
}

// ApplyReferral validates a referral code. The discount is messaging only;
// totals stay as computed from item prices.
func ApplyReferral(c *gin.Context) {
	var input models.ReferralInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid referral input", nil)
		return
	}

	if !cart.ValidReferralCode(input.Code) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Enter a referral code", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, cart.ReferralMessage, nil)
}

// Checkout is a placeholder; payment processing is not offered.
func Checkout(c *gin.Context) {
	utils.APIResponse(c, http.StatusNotImplemented, false, "Checkout is not available yet", nil)
}
