package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"icebreaker_server/dto"
	"icebreaker_server/internal/models"
	"icebreaker_server/internal/repository"
	"icebreaker_server/internal/services"
)

type EventController struct {
	Events     *repository.EventRepo
	Users      *repository.UserRepo
	Activities *repository.ActivityRepo
	Reviews    *services.ReviewService
	Notifier   *services.Notifier
}

// CreateEventHandler godoc
// @Summary Create a new event
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.EventRequestDTO true "Event"
// @Success 201 {object} models.Event
// @Failure 400 {object} dto.ErrorResponse
// @Router /event [post]
func (ctl *EventController) CreateEventHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EventRequestDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if body.Name == "" || body.Description == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing required fields"})
		}

		event := models.NewEvent(body.Name, body.Description, body.Picture)
		if err := ctl.Events.Insert(c.Context(), event); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		return c.Status(fiber.StatusCreated).JSON(event)
	}
}

func (ctl *EventController) UpdateEventHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID := c.Params("eventId")

		var body dto.EventUpdateDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		updates := bson.M{}
		if body.Name != nil {
			updates["name"] = *body.Name
		}
		if body.Description != nil {
			updates["description"] = *body.Description
		}
		if body.Picture != nil {
			updates["picture"] = *body.Picture
		}
		if body.Open != nil {
			updates["open"] = *body.Open
		}

		if err := ctl.Events.Update(c.Context(), eventID, updates); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		updated, err := ctl.Events.FindByID(c.Context(), eventID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(updated)
	}
}

func (ctl *EventController) GetEventHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		event, err := ctl.Events.FindByID(c.Context(), c.Params("eventId"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(event)
	}
}

// GetEventStatusHandler returns the lightweight open/closed view clients
// poll before joining.
func (ctl *EventController) GetEventStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		event, err := ctl.Events.FindByID(c.Context(), c.Params("eventId"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(dto.EventStatusDTO{Name: event.Name, Open: event.Open})
	}
}

func (ctl *EventController) ListEventsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		events, err := ctl.Events.List(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if events == nil {
			events = []models.Event{}
		}
		return c.JSON(events)
	}
}

func (ctl *EventController) DeleteEventHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := ctl.Events.Delete(c.Context(), c.Params("eventId")); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "Event deleted"})
	}
}

// SetCurrentActivityHandler moves the live-activity pointer, tells connected
// clients, and queues a review refresh for everyone in the event.
func (ctl *EventController) SetCurrentActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID := c.Params("eventId")

		var body dto.CurrentActivityDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		if err := ctl.Events.SetCurrentActivity(c.Context(), eventID, body.ActivityID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		activityID := ""
		if body.ActivityID != nil {
			activityID = *body.ActivityID
		}
		ctl.Notifier.NotifyActivityChanged(eventID, activityID)
		ctl.Reviews.RefreshEventLater(eventID)

		return c.JSON(fiber.Map{"message": "current activity updated"})
	}
}

// SetReviewVisibilityHandler toggles whether participants can open their
// reviews and broadcasts reviewOn/reviewOff.
func (ctl *EventController) SetReviewVisibilityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID := c.Params("eventId")

		var body dto.ReviewVisibilityDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if body.ShowReview == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "showReview is required"})
		}

		if err := ctl.Events.SetShowReview(c.Context(), eventID, *body.ShowReview); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		ctl.Notifier.NotifyReviewVisibility(eventID, *body.ShowReview)

		return c.JSON(fiber.Map{"showReview": *body.ShowReview})
	}
}

// AttachActivityHandler adds an existing activity onto an event's roster.
func (ctl *EventController) AttachActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID := c.Params("eventId")
		activityID := c.Params("activityId")

		if _, err := ctl.Activities.FindByID(c.Context(), activityID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "activity not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		if err := ctl.Events.AttachActivity(c.Context(), eventID, activityID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		ctl.Reviews.RefreshEventLater(eventID)

		return c.JSON(fiber.Map{"message": "activity attached"})
	}
}

// DetachActivityHandler pulls an activity off an event's roster.
func (ctl *EventController) DetachActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID := c.Params("eventId")
		activityID := c.Params("activityId")

		if err := ctl.Events.DetachActivity(c.Context(), eventID, activityID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		ctl.Reviews.RefreshEventLater(eventID)

		return c.JSON(fiber.Map{"message": "activity detached"})
	}
}

func (ctl *EventController) ListParticipantsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		participants, err := ctl.Users.ListByEvent(c.Context(), c.Params("eventId"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if len(participants) == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No participants found"})
		}
		return c.JSON(participants)
	}
}
