package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"icebreaker_server/dto"
	"icebreaker_server/internal/models"
	"icebreaker_server/internal/repository"
)

type ActivityController struct {
	Activities activityStore
	Events     eventRoster
	Answers    activityCleaner
	Groups     activityCleaner
	Reviews    reviewRefresher
}

// CreateActivityHandler creates a prompt and attaches it to its event.
// Everyone already registered gets their review rebuilt since the activity
// roster changed.
func (ctl *ActivityController) CreateActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ActivityRequestDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if body.EventID == "" || body.Type == "" || body.Question == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing required fields"})
		}
		if !models.ValidActivityType(body.Type) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid activity type"})
		}

		if _, err := ctl.Events.FindByID(c.Context(), body.EventID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		activity := models.NewActivity(body.EventID, body.Type, body.Title, body.Question, body.NotePlaceholder)
		if err := ctl.Activities.Insert(c.Context(), activity); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if err := ctl.Events.AttachActivity(c.Context(), body.EventID, activity.ActivityID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		ctl.Reviews.RefreshEventLater(body.EventID)

		return c.Status(fiber.StatusCreated).JSON(activity)
	}
}

func (ctl *ActivityController) ListActivitiesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID := c.Query("eventId")
		if eventID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "eventId query parameter is required"})
		}
		activities, err := ctl.Activities.ListByEvent(c.Context(), eventID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if activities == nil {
			activities = []models.Activity{}
		}
		return c.JSON(activities)
	}
}

func (ctl *ActivityController) GetActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		activity, err := ctl.Activities.FindByID(c.Context(), c.Params("activityId"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "activity not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(activity)
	}
}

// DeleteActivityHandler removes the activity, detaches it from its event and
// drops the answers and grouping that hang off it.
func (ctl *ActivityController) DeleteActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		activityID := c.Params("activityId")

		activity, err := ctl.Activities.FindByID(c.Context(), activityID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "activity not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		if err := ctl.Activities.Delete(c.Context(), activityID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if err := ctl.Events.DetachActivity(c.Context(), activity.EventID, activityID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		// Best effort, but an orphaned answer or grouping must show up in
		// the logs.
		if err := ctl.Answers.DeleteByActivity(c.Context(), activityID); err != nil {
			log.Printf("❌ delete answers for activity %s: %v", activityID, err)
		}
		if err := ctl.Groups.DeleteByActivity(c.Context(), activityID); err != nil {
			log.Printf("❌ delete grouping for activity %s: %v", activityID, err)
		}

		ctl.Reviews.RefreshEventLater(activity.EventID)

		return c.JSON(fiber.Map{"message": "Activity deleted"})
	}
}
