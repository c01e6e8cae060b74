package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/healthlog/internal/services"
)

// ?active=true limits the list to active types ordered by usage.
func (handler *Handler) ListAilmentTypes(c *fiber.Ctx) error {
	if c.QueryBool("active") {
		return c.JSON(handler.tracker.ActiveAilmentTypes())
	}
	return c.JSON(handler.tracker.AilmentTypes())
}

func (handler *Handler) CreateAilmentType(c *fiber.Ctx) error {
	var input services.NameInput
	if err := handler.parseBody(c, &input); err != nil {
		return err
	}
	ailment, err := handler.tracker.AddAilmentType(c.UserContext(), input)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ailment)
}

func (handler *Handler) UpdateAilmentType(c *fiber.Ctx) error {
	var input services.NameInput
	if err := handler.parseBody(c, &input); err != nil {
		return err
	}
	ailment, err := handler.tracker.UpdateAilmentType(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(ailment)
}

func (handler *Handler) ToggleAilmentType(c *fiber.Ctx) error {
	ailment, err := handler.tracker.ToggleAilmentActive(c.UserContext(), c.Params("id"))
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(ailment)
}

func (handler *Handler) DeleteAilmentType(c *fiber.Ctx) error {
	if err := handler.tracker.DeleteAilmentType(c.UserContext(), c.Params("id")); err != nil {
		return handler.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ListTriggerTypes(c *fiber.Ctx) error {
	if c.QueryBool("active") {
		return c.JSON(handler.tracker.ActiveTriggerTypes())
	}
	return c.JSON(handler.tracker.TriggerTypes())
}

func (handler *Handler) CreateTriggerType(c *fiber.Ctx) error {
	var input services.NameInput
	if err := handler.parseBody(c, &input); err != nil {
		return err
	}
	trigger, err := handler.tracker.AddTriggerType(c.UserContext(), input)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(trigger)
}

func (handler *Handler) UpdateTriggerType(c *fiber.Ctx) error {
	var input services.NameInput
	if err := handler.parseBody(c, &input); err != nil {
		return err
	}
	trigger, err := handler.tracker.UpdateTriggerType(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(trigger)
}

func (handler *Handler) ToggleTriggerType(c *fiber.Ctx) error {
	trigger, err := handler.tracker.ToggleTriggerActive(c.UserContext(), c.Params("id"))
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(trigger)
}

func (handler *Handler) DeleteTriggerType(c *fiber.Ctx) error {
	if err := handler.tracker.DeleteTriggerType(c.UserContext(), c.Params("id")); err != nil {
		return handler.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCustomSymptoms also reports the built-in symptoms in usage order so a
// client can render one picker.
func (handler *Handler) ListCustomSymptoms(c *fiber.Ctx) error {
	custom := handler.tracker.CustomSymptoms()
	if c.QueryBool("active") {
		custom = handler.tracker.ActiveCustomSymptoms()
	}
	return c.JSON(fiber.Map{
		"builtin": handler.tracker.SortedBuiltinSymptoms(),
		"custom":  custom,
	})
}

func (handler *Handler) CreateCustomSymptom(c *fiber.Ctx) error {
	var input services.NameInput
	if err := handler.parseBody(c, &input); err != nil {
		return err
	}
	symptom, err := handler.tracker.AddCustomSymptom(c.UserContext(), input)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(symptom)
}

func (handler *Handler) UpdateCustomSymptom(c *fiber.Ctx) error {
	var input services.NameInput
	if err := handler.parseBody(c, &input); err != nil {
		return err
	}
	symptom, err := handler.tracker.UpdateCustomSymptom(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(symptom)
}

func (handler *Handler) ToggleCustomSymptom(c *fiber.Ctx) error {
	symptom, err := handler.tracker.ToggleCustomSymptomActive(c.UserContext(), c.Params("id"))
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(symptom)
}

func (handler *Handler) DeleteCustomSymptom(c *fiber.Ctx) error {
	if err := handler.tracker.DeleteCustomSymptom(c.UserContext(), c.Params("id")); err != nil {
		return handler.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
