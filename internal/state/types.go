package state

import (
	"context"
	"fmt"

	"github.com/terraincognita07/healthlog/internal/models"
	"github.com/terraincognita07/healthlog/internal/services"
)

func ailmentID(ailment models.AilmentType) string               { return ailment.ID }
func triggerID(trigger models.TriggerType) string               { return trigger.ID }
func customSymptomID(symptom models.CustomPeriodSymptom) string { return symptom.ID }

func (tracker *Tracker) AddAilmentType(ctx context.Context, input services.NameInput) (models.AilmentType, error) {
	input, err := services.NormalizeNameInput(input)
	if err != nil {
		return models.AilmentType{}, err
	}

	var added models.AilmentType
	err = tracker.write(ctx, func() error {
		now := tracker.timestamp()
		ailment := models.AilmentType{
			ID:        tracker.newID(),
			Name:      input.Name,
			NameZh:    input.NameZh,
			Icon:      input.Icon,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tracker.store.AilmentTypes().Add(ctx, &ailment); err != nil {
			return saveFailed(err)
		}
		tracker.ailmentTypes = appendCopy(tracker.ailmentTypes, ailment)
		added = ailment
		return nil
	})
	return added, err
}

// UpdateAilmentType renames a custom ailment type. Default types are returned
// unchanged.
func (tracker *Tracker) UpdateAilmentType(ctx context.Context, id string, input services.NameInput) (models.AilmentType, error) {
	input, err := services.NormalizeNameInput(input)
	if err != nil {
		return models.AilmentType{}, err
	}

	var result models.AilmentType
	err = tracker.write(ctx, func() error {
		current, ok := findByID(tracker.ailmentTypes, id, ailmentID)
		if !ok {
			return fmt.Errorf("%w: ailment type %s", ErrNotFound, id)
		}
		if current.IsDefault {
			result = current
			return nil
		}

		now := tracker.timestamp()
		stored, err := tracker.store.AilmentTypes().Update(ctx, id, func(ailment *models.AilmentType) {
			ailment.Name = input.Name
			ailment.NameZh = input.NameZh
			ailment.Icon = input.Icon
			ailment.UpdatedAt = now
		})
		if err != nil {
			return saveFailed(err)
		}
		tracker.ailmentTypes = replaceByID(tracker.ailmentTypes, id, ailmentID, stored)
		result = stored
		return nil
	})
	return result, err
}

func (tracker *Tracker) ToggleAilmentActive(ctx context.Context, id string) (models.AilmentType, error) {
	var result models.AilmentType
	err := tracker.write(ctx, func() error {
		current, ok := findByID(tracker.ailmentTypes, id, ailmentID)
		if !ok {
			return fmt.Errorf("%w: ailment type %s", ErrNotFound, id)
		}

		now := tracker.timestamp()
		stored, err := tracker.store.AilmentTypes().Update(ctx, id, func(ailment *models.AilmentType) {
			ailment.IsActive = !current.IsActive
			ailment.UpdatedAt = now
		})
		if err != nil {
			return saveFailed(err)
		}
		tracker.ailmentTypes = replaceByID(tracker.ailmentTypes, id, ailmentID, stored)
		result = stored
		return nil
	})
	return result, err
}

// DeleteAilmentType removes a custom ailment type. Default and unknown types
// are left alone. Entries that used the type stay and are shown under the
// first remaining type.
func (tracker *Tracker) DeleteAilmentType(ctx context.Context, id string) error {
	return tracker.write(ctx, func() error {
		current, ok := findByID(tracker.ailmentTypes, id, ailmentID)
		if !ok || current.IsDefault {
			return nil
		}
		if err := tracker.store.AilmentTypes().Delete(ctx, id); err != nil {
			return deleteFailed(err)
		}
		tracker.ailmentTypes = removeByID(tracker.ailmentTypes, id, ailmentID)
		return nil
	})
}

func (tracker *Tracker) AddTriggerType(ctx context.Context, input services.NameInput) (models.TriggerType, error) {
	input, err := services.NormalizeNameInput(input)
	if err != nil {
		return models.TriggerType{}, err
	}
	if input.Category == "" {
		input.Category = models.TriggerCategoryOther
	}

	var added models.TriggerType
	err = tracker.write(ctx, func() error {
		now := tracker.timestamp()
		trigger := models.TriggerType{
			ID:        tracker.newID(),
			Name:      input.Name,
			NameZh:    input.NameZh,
			Icon:      input.Icon,
			Category:  input.Category,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tracker.store.TriggerTypes().Add(ctx, &trigger); err != nil {
			return saveFailed(err)
		}
		tracker.triggerTypes = appendCopy(tracker.triggerTypes, trigger)
		added = trigger
		return nil
	})
	return added, err
}

// UpdateTriggerType renames a custom trigger type and may move it to another
// category. Default types are returned unchanged.
func (tracker *Tracker) UpdateTriggerType(ctx context.Context, id string, input services.NameInput) (models.TriggerType, error) {
	input, err := services.NormalizeNameInput(input)
	if err != nil {
		return models.TriggerType{}, err
	}

	var result models.TriggerType
	err = tracker.write(ctx, func() error {
		current, ok := findByID(tracker.triggerTypes, id, triggerID)
		if !ok {
			return fmt.Errorf("%w: trigger type %s", ErrNotFound, id)
		}
		if current.IsDefault {
			result = current
			return nil
		}

		now := tracker.timestamp()
		stored, err := tracker.store.TriggerTypes().Update(ctx, id, func(trigger *models.TriggerType) {
			trigger.Name = input.Name
			trigger.NameZh = input.NameZh
			trigger.Icon = input.Icon
			if input.Category != "" {
				trigger.Category = input.Category
			}
			trigger.UpdatedAt = now
		})
		if err != nil {
			return saveFailed(err)
		}
		tracker.triggerTypes = replaceByID(tracker.triggerTypes, id, triggerID, stored)
		result = stored
		return nil
	})
	return result, err
}

func (tracker *Tracker) ToggleTriggerActive(ctx context.Context, id string) (models.TriggerType, error) {
	var result models.TriggerType
	err := tracker.write(ctx, func() error {
		current, ok := findByID(tracker.triggerTypes, id, triggerID)
		if !ok {
			return fmt.Errorf("%w: trigger type %s", ErrNotFound, id)
		}

		now := tracker.timestamp()
		stored, err := tracker.store.TriggerTypes().Update(ctx, id, func(trigger *models.TriggerType) {
			trigger.IsActive = !current.IsActive
			trigger.UpdatedAt = now
		})
		if err != nil {
			return saveFailed(err)
		}
		tracker.triggerTypes = replaceByID(tracker.triggerTypes, id, triggerID, stored)
		result = stored
		return nil
	})
	return result, err
}

// DeleteTriggerType removes a custom trigger type. Default and unknown types
// are left alone.
func (tracker *Tracker) DeleteTriggerType(ctx context.Context, id string) error {
	return tracker.write(ctx, func() error {
		current, ok := findByID(tracker.triggerTypes, id, triggerID)
		if !ok || current.IsDefault {
			return nil
		}
		if err := tracker.store.TriggerTypes().Delete(ctx, id); err != nil {
			return deleteFailed(err)
		}
		tracker.triggerTypes = removeByID(tracker.triggerTypes, id, triggerID)
		return nil
	})
}

func (tracker *Tracker) AddCustomSymptom(ctx context.Context, input services.NameInput) (models.CustomPeriodSymptom, error) {
	input, err := services.NormalizeNameInput(input)
	if err != nil {
		return models.CustomPeriodSymptom{}, err
	}

	var added models.CustomPeriodSymptom
	err = tracker.write(ctx, func() error {
		now := tracker.timestamp()
		symptom := models.CustomPeriodSymptom{
			ID:        tracker.newID(),
			Name:      input.Name,
			NameZh:    input.NameZh,
			Icon:      input.Icon,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tracker.store.CustomSymptoms().Add(ctx, &symptom); err != nil {
			return saveFailed(err)
		}
		tracker.customSymptoms = appendCopy(tracker.customSymptoms, symptom)
		added = symptom
		return nil
	})
	return added, err
}

func (tracker *Tracker) UpdateCustomSymptom(ctx context.Context, id string, input services.NameInput) (models.CustomPeriodSymptom, error) {
	input, err := services.NormalizeNameInput(input)
	if err != nil {
		return models.CustomPeriodSymptom{}, err
	}

	var result models.CustomPeriodSymptom
	err = tracker.write(ctx, func() error {
		if _, ok := findByID(tracker.customSymptoms, id, customSymptomID); !ok {
			return fmt.Errorf("%w: custom symptom %s", ErrNotFound, id)
		}

		now := tracker.timestamp()
		stored, err := tracker.store.CustomSymptoms().Update(ctx, id, func(symptom *models.CustomPeriodSymptom) {
			symptom.Name = input.Name
			symptom.NameZh = input.NameZh
			symptom.Icon = input.Icon
			symptom.UpdatedAt = now
		})
		if err != nil {
			return saveFailed(err)
		}
		tracker.customSymptoms = replaceByID(tracker.customSymptoms, id, customSymptomID, stored)
		result = stored
		return nil
	})
	return result, err
}

func (tracker *Tracker) ToggleCustomSymptomActive(ctx context.Context, id string) (models.CustomPeriodSymptom, error) {
	var result models.CustomPeriodSymptom
	err := tracker.write(ctx, func() error {
		current, ok := findByID(tracker.customSymptoms, id, customSymptomID)
		if !ok {
			return fmt.Errorf("%w: custom symptom %s", ErrNotFound, id)
		}

		now := tracker.timestamp()
		stored, err := tracker.store.CustomSymptoms().Update(ctx, id, func(symptom *models.CustomPeriodSymptom) {
			symptom.IsActive = !current.IsActive
			symptom.UpdatedAt = now
		})
		if err != nil {
			return saveFailed(err)
		}
		tracker.customSymptoms = replaceByID(tracker.customSymptoms, id, customSymptomID, stored)
		result = stored
		return nil
	})
	return result, err
}

// DeleteCustomSymptom removes a custom symptom. Period entries keep their
// references to it.
func (tracker *Tracker) DeleteCustomSymptom(ctx context.Context, id string) error {
	return tracker.write(ctx, func() error {
		if err := tracker.store.CustomSymptoms().Delete(ctx, id); err != nil {
			return deleteFailed(err)
		}
		tracker.customSymptoms = removeByID(tracker.customSymptoms, id, customSymptomID)
		return nil
	})
}
