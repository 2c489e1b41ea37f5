package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"icebreaker_server/dto"
	"icebreaker_server/internal/models"
	"icebreaker_server/internal/repository"
)

type UserController struct {
	Users   userStore
	Events  participantRoster
	Reviews reviewDeleter
}

// CreateUserHandler registers a participant into an event.
func (ctl *UserController) CreateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.UserRequestDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if body.EventID == "" || body.Name == "" || body.Icon == "" || body.Description == "" || body.Email == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing required fields"})
		}

		event, err := ctl.Events.FindByID(c.Context(), body.EventID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if !event.Open {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "event is closed"})
		}

		user := models.User{
			UserID:      uuid.NewString(),
			EventID:     body.EventID,
			Name:        body.Name,
			Email:       body.Email,
			Icon:        body.Icon,
			Description: body.Description,
			Role:        models.RoleUser,
		}
		if err := ctl.Users.Insert(c.Context(), user); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if err := ctl.Events.AddParticipant(c.Context(), body.EventID, user.UserID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

func (ctl *UserController) GetUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := ctl.Users.FindByID(c.Context(), c.Params("userId"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(user)
	}
}

func (ctl *UserController) UpdateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")

		var body dto.UserUpdateDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		updates := bson.M{}
		if body.Name != nil {
			updates["name"] = *body.Name
		}
		if body.Icon != nil {
			updates["icon"] = *body.Icon
		}
		if body.Description != nil {
			updates["description"] = *body.Description
		}

		if err := ctl.Users.Update(c.Context(), userID, updates); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		updated, err := ctl.Users.FindByID(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(updated)
	}
}

// DeleteUserHandler removes the participant, their place on the event's
// roster and their cached review.
func (ctl *UserController) DeleteUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")

		user, err := ctl.Users.FindByID(c.Context(), userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		if err := ctl.Users.Delete(c.Context(), userID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		// Best effort; a leftover roster entry or review must be visible in
		// the logs.
		if err := ctl.Events.RemoveParticipant(c.Context(), user.EventID, userID); err != nil {
			log.Printf("❌ remove user %s from event %s roster: %v", userID, user.EventID, err)
		}
		if err := ctl.Reviews.Delete(c.Context(), userID, user.EventID); err != nil {
			log.Printf("❌ delete review for user %s in event %s: %v", userID, user.EventID, err)
		}

		return c.JSON(fiber.Map{"success": true})
	}
}
