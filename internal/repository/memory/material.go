package memory

import (
	"context"

	"github.com/constructor-app/constructor-backend-go/internal/domain/material"
)

type MaterialRepositoryImpl struct {
	store *Store
}

func NewMaterialRepository(store *Store) material.MaterialRepository {
	return &MaterialRepositoryImpl{store: store}
}

func cloneMaterial(m material.Material) material.Material {
	out := m
	out.UsageHistory = make([]material.UsageEntry, len(m.UsageHistory))
	copy(out.UsageHistory, m.UsageHistory)
	if m.VisibleTo != nil {
		out.VisibleTo = make([]string, len(m.VisibleTo))
		copy(out.VisibleTo, m.VisibleTo)
	}
	return out
}

func (r *MaterialRepositoryImpl) GetByID(ctx context.Context, id string) (material.Material, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, m := range r.store.materials {
		if m.ID == id {
			return cloneMaterial(m), nil
		}
	}
	return material.Material{}, material.ErrMaterialNotFound
}

func (r *MaterialRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]material.Material, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]material.Material, 0)
	for _, m := range r.store.materials {
		if m.ProjectID == projectID {
			out = append(out, cloneMaterial(m))
		}
	}
	return out, nil
}

func (r *MaterialRepositoryImpl) Create(ctx context.Context, newMaterial material.Material) (material.Material, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.materials = append(r.store.materials, cloneMaterial(newMaterial))
	return newMaterial, nil
}

func (r *MaterialRepositoryImpl) ApplyUsage(ctx context.Context, id string, entry material.UsageEntry) (material.Material, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.materials {
		if r.store.materials[i].ID != id {
			continue
		}
		m := &r.store.materials[i]
		if entry.QuantityUsed > m.Quantity {
			return material.Material{}, material.ErrInsufficientStock
		}
		// decrement, restatus and append history as one step
		m.Quantity -= entry.QuantityUsed
		m.Status = material.StatusForQuantity(m.Quantity)
		m.UsageHistory = append(m.UsageHistory, entry)
		return cloneMaterial(*m), nil
	}
	return material.Material{}, material.ErrMaterialNotFound
}
