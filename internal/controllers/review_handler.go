package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"icebreaker_server/internal/middleware"
	"icebreaker_server/internal/repository"
	"icebreaker_server/internal/services"
)

type ReviewController struct {
	Events  *repository.EventRepo
	Reviews *services.ReviewService
}

// GetMyReviewHandler serves the caller's own review, generating it on a
// cache miss. Participants only see it once the admin flipped the event's
// review visibility on.
func (ctl *ReviewController) GetMyReviewHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}
		eventID := c.Params("eventId")

		event, err := ctl.Events.FindByID(c.Context(), eventID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if !event.ShowReview && !middleware.IsAdmin(c) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "reviews are not available yet"})
		}

		review, err := ctl.Reviews.GetOrCreateReview(c.Context(), uid, eventID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found in event"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(review)
	}
}

// GetUserReviewHandler lets an admin read any participant's review.
func (ctl *ReviewController) GetUserReviewHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		review, err := ctl.Reviews.GetOrCreateReview(c.Context(), c.Params("userId"), c.Params("eventId"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user or event not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(review)
	}
}

// RefreshReviewHandler regenerates a review synchronously; unlike the
// fire-and-forget triggers this surfaces the failure to the caller.
func (ctl *ReviewController) RefreshReviewHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")
		eventID := c.Params("eventId")

		if err := ctl.Reviews.RefreshReview(c.Context(), userID, eventID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user or event not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		review, err := ctl.Reviews.GetOrCreateReview(c.Context(), userID, eventID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(review)
	}
}
