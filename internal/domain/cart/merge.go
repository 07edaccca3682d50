package cart

import (
	"time"

	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MergePlan describes how an anonymous cart folds into a permanent one.
// The plan is computed in memory and applied by the repository in a single
// transaction so a crash mid-merge never loses or duplicates lines.
type MergePlan struct {
	// Updated permanent lines whose quantities absorbed an anonymous line
	Updates []*CartLine
	// New lines copied from the anonymous cart into the permanent cart
	Inserts []*CartLine
	// All anonymous line IDs, deleted once merged
	DeleteIDs []uuid.UUID
}

// IsEmpty reports whether the plan has no work to do
func (p *MergePlan) IsEmpty() bool {
	return len(p.Updates) == 0 && len(p.Inserts) == 0 && len(p.DeleteIDs) == 0
}

// PlanMerge folds anonymousLines into permanentLines for permanentUserID.
// Anonymous lines matching an existing permanent line by product sum their
// quantities into it; the rest are copied over in full, selected size
// included. Every anonymous line is scheduled for deletion.
func PlanMerge(permanentUserID uuid.UUID, anonymousLines, permanentLines []*CartLine) (*MergePlan, error) {
	if permanentUserID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Permanent user ID is required")
	}

	plan := &MergePlan{}
	updated := make(map[uuid.UUID]bool)

	for _, anon := range anonymousLines {
		var target *CartLine
		for _, perm := range permanentLines {
			if perm.ProductID == anon.ProductID {
				target = perm
				break
			}
		}

		if target != nil {
			target.Quantity += anon.Quantity
			target.UpdatedAt = time.Now()
			if !updated[target.ID] {
				updated[target.ID] = true
				plan.Updates = append(plan.Updates, target)
			}
		} else {
			copied := &CartLine{
				BaseEntity:   shared.NewBaseEntity(),
				UserID:       permanentUserID,
				ProductID:    anon.ProductID,
				SelectedSize: anon.SelectedSize,
				Quantity:     anon.Quantity,
			}
			plan.Inserts = append(plan.Inserts, copied)
			permanentLines = append(permanentLines, copied)
		}

		plan.DeleteIDs = append(plan.DeleteIDs, anon.ID)
	}

	return plan, nil
}
