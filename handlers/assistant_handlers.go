package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"biznova/aitools"
	"biznova/assistant"
	"biznova/middleware"
	"biznova/models"
)

// HandleAssistant answers a merchant's natural-language question.
// POST /api/v1/merchant/assistant
//
// Flow: classify intent, invoke the mapped business tools in parallel,
// synthesize a reply from their structured output. The LLM never sees raw
// inventory or sales rows.
func HandleAssistant(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var req models.AssistantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Message is required"})
	}

	intent := intentRouter.Classify(c.Context(), req.Message)
	log.Printf("[ASSISTANT] Merchant %s message classified as %q", claims.UserID, intent)

	if intent == assistant.IntentUnknown {
		return c.JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"intent": intent,
				"reply":  assistant.ClarificationMessage,
			},
		})
	}

	results, err := intentRouter.Dispatch(c.Context(), intent, aitools.Params{MerchantID: claims.UserID})
	if err != nil {
		log.Printf("[ASSISTANT] Tool dispatch failed for intent %q: %v", intent, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Something went wrong, please try again"})
	}

	reply := synthesizer.Synthesize(c.Context(), req.Message, req.Language, results)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"intent":  intent,
			"reply":   reply,
			"results": results,
		},
	})
}
