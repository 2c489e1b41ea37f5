package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"icebreaker_server/dto"
	"icebreaker_server/internal/repository"
	"icebreaker_server/internal/services"
)

type GroupActivityController struct {
	Groups   *repository.GroupActivityRepo
	Grouping *services.GroupingService
}

func (ctl *GroupActivityController) GetGroupActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ga, err := ctl.Groups.FindByID(c.Context(), c.Params("groupActivityId"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Group activity not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(ga)
	}
}

func (ctl *GroupActivityController) GetByActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ga, err := ctl.Groups.FindByActivity(c.Context(), c.Params("activityId"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Group activity not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(ga)
	}
}

// CreateGroupActivityHandler pairs an event's participants for an activity.
// 201 on a fresh pairing, 200 when an existing one was re-rolled in place.
func (ctl *GroupActivityController) CreateGroupActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID := c.Params("eventId")
		activityID := c.Params("activityId")

		var body dto.GroupActivityRequestDTO
		if err := c.BodyParser(&body); err != nil && len(c.Body()) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		log.Printf("🐀 Creating group activity for event %s, activity %s", eventID, activityID)

		ga, created, err := ctl.Grouping.RunGrouping(c.Context(), eventID, activityID, body.Share)
		if err != nil {
			if errors.Is(err, services.ErrNoParticipants) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No users found for this event"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		status := fiber.StatusOK
		if created {
			status = fiber.StatusCreated
		}
		return c.Status(status).JSON(ga)
	}
}
