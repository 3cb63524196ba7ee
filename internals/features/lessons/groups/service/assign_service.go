package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/groups/model"
	regmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/registrations/model"
)

var (
	ErrGroupNotFound   = errors.New("lesson group not found")
	ErrPackageMismatch = errors.New("registrations must belong to the group's package")
)

// CapacityError reports a rejected batch with the number of free slots.
type CapacityError struct {
	Requested int
	Remaining int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded: requested %d, %d slot(s) remaining", e.Requested, e.Remaining)
}

// CheckCapacity is the assignment decision: a batch fits iff requested does
// not exceed max - current. Zero requested always fits.
func CheckCapacity(maxParticipants, currentCount, requested int) (ok bool, remaining int) {
	remaining = maxParticipants - currentCount
	if remaining < 0 {
		remaining = 0
	}
	return requested <= remaining, remaining
}

// AssignToGroup places a batch of registrations into a group, all or nothing.
// The group row is locked for the duration of the transaction so concurrent
// assignments cannot oversubscribe the group. Capacity is judged against the
// full requested batch. Already-assigned registrations are never silently
// moved; a batch consisting only of those succeeds with zero placed.
func AssignToGroup(db *gorm.DB, groupID uuid.UUID, registrationIDs []uuid.UUID) (assigned int, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		var group model.LessonGroupModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&group, "lesson_group_id = ?", groupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGroupNotFound
			}
			return err
		}

		var current int64
		if err := tx.Model(&regmodel.LessonRegistrationModel{}).
			Where("lesson_registration_assigned_group_id = ?", group.LessonGroupID).
			Count(&current).Error; err != nil {
			return err
		}

		ok, remaining := CheckCapacity(group.LessonGroupMaxParticipants, int(current), len(registrationIDs))
		if !ok {
			return &CapacityError{Requested: len(registrationIDs), Remaining: remaining}
		}

		// only unassigned registrations of the same package are placed
		var candidates []regmodel.LessonRegistrationModel
		if err := tx.
			Where("lesson_registration_id IN ?", registrationIDs).
			Where("lesson_registration_package_id = ?", group.LessonGroupPackageID).
			Where("lesson_registration_assigned_group_id IS NULL").
			Find(&candidates).Error; err != nil {
			return err
		}
		if len(candidates) < len(registrationIDs) {
			// the difference is either a foreign package or an already
			// placed registration; foreign packages are a hard error
			var foreign int64
			if err := tx.Model(&regmodel.LessonRegistrationModel{}).
				Where("lesson_registration_id IN ?", registrationIDs).
				Where("lesson_registration_package_id <> ?", group.LessonGroupPackageID).
				Count(&foreign).Error; err != nil {
				return err
			}
			if foreign > 0 {
				return ErrPackageMismatch
			}
		}
		if len(candidates) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(candidates))
		for i := range candidates {
			ids = append(ids, candidates[i].LessonRegistrationID)
		}
		if err := tx.Model(&regmodel.LessonRegistrationModel{}).
			Where("lesson_registration_id IN ?", ids).
			Update("lesson_registration_assigned_group_id", group.LessonGroupID).Error; err != nil {
			return err
		}

		assigned = len(ids)
		return nil
	})
	return assigned, err
}

// RemoveFromGroup clears the group reference of one registration. Removing
// an already-unassigned registration succeeds without touching anything.
func RemoveFromGroup(db *gorm.DB, registrationID uuid.UUID) error {
	var reg regmodel.LessonRegistrationModel
	if err := db.First(&reg, "lesson_registration_id = ?", registrationID).Error; err != nil {
		return err
	}
	if reg.LessonRegistrationAssignedGroupID == nil {
		return nil
	}
	return db.Model(&regmodel.LessonRegistrationModel{}).
		Where("lesson_registration_id = ?", registrationID).
		Update("lesson_registration_assigned_group_id", nil).Error
}
