package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"icebreaker_server/dto"
	"icebreaker_server/internal/middleware"
	"icebreaker_server/internal/models"
	"icebreaker_server/internal/repository"
	"icebreaker_server/internal/services"
	"icebreaker_server/utils"
)

// maxNotesLen caps free-text answers before any persistence call.
const maxNotesLen = 5000

type UserActivityController struct {
	Answers    answerStore
	Activities activityFinder
	Reviews    reviewRefresher
	Notifier   *services.Notifier
}

// mayWriteFor enforces "you can only write your own notes"; admins are
// exempt.
func mayWriteFor(c *fiber.Ctx, userID string) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	if uid != userID && !middleware.IsAdmin(c) {
		return fiber.NewError(fiber.StatusForbidden, "cannot write another user's notes")
	}
	return nil
}

// CreateUserActivityHandler stores a participant's answer. The notes are
// stripped of any markup, a duplicate (user, activity) submission is a 409,
// and the owner's review is rebuilt off the request path.
func (ctl *UserActivityController) CreateUserActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.UserActivityRequestDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if body.ActivityID == "" || body.Notes == "" || body.UserID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing required fields"})
		}
		if len(body.Notes) > maxNotesLen {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "notes too long"})
		}
		if err := mayWriteFor(c, body.UserID); err != nil {
			return err
		}

		activity, err := ctl.Activities.FindByID(c.Context(), body.ActivityID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "activity not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		cleanNotes := utils.SanitizeNotes(body.Notes)
		ua := models.NewUserActivity(body.ActivityID, body.UserID, body.GroupID, cleanNotes)

		if err := ctl.Answers.Insert(c.Context(), ua); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "User has already submitted a response for this activity"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		ctl.Reviews.RefreshLater(body.UserID, activity.EventID)
		ctl.Notifier.NotifyPartnerNoteUpdated(activity.EventID, body.ActivityID, body.UserID, cleanNotes)

		return c.Status(fiber.StatusCreated).JSON(ua)
	}
}

// ListUserActivitiesHandler dumps every answer; admin tooling only.
func (ctl *UserActivityController) ListUserActivitiesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, err := ctl.Answers.ListAll(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if all == nil {
			all = []models.UserActivity{}
		}
		return c.JSON(all)
	}
}

func (ctl *UserActivityController) GetUserActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ua, err := ctl.Answers.FindByUserAndActivity(c.Context(), c.Params("userId"), c.Params("activityId"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(ua)
	}
}

func (ctl *UserActivityController) UpdateUserActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")
		activityID := c.Params("activityId")

		var body dto.UserActivityUpdateDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if body.Notes == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing notes"})
		}
		if len(body.Notes) > maxNotesLen {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "notes too long"})
		}
		if err := mayWriteFor(c, userID); err != nil {
			return err
		}

		activity, err := ctl.Activities.FindByID(c.Context(), activityID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "activity not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		cleanNotes := utils.SanitizeNotes(body.Notes)
		if err := ctl.Answers.UpdateNotes(c.Context(), userID, activityID, cleanNotes, body.GroupID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		ctl.Reviews.RefreshLater(userID, activity.EventID)
		ctl.Notifier.NotifyPartnerNoteUpdated(activity.EventID, activityID, userID, cleanNotes)

		return c.JSON(fiber.Map{"message": "UserActivity updated"})
	}
}

func (ctl *UserActivityController) DeleteUserActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")
		activityID := c.Params("activityId")

		if err := mayWriteFor(c, userID); err != nil {
			return err
		}

		activity, err := ctl.Activities.FindByID(c.Context(), activityID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "activity not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		if err := ctl.Answers.Delete(c.Context(), userID, activityID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		ctl.Reviews.RefreshLater(userID, activity.EventID)

		return c.JSON(fiber.Map{"message": "UserActivity deleted"})
	}
}
