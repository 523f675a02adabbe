package service

import (
	"strings"

	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/repository"
)

// DiningTableService owns dine-in table management.
type DiningTableService struct {
	tableRepo repository.DiningTableRepository
}

// NewDiningTableService creates a table service.
func NewDiningTableService(tableRepo repository.DiningTableRepository) *DiningTableService {
	return &DiningTableService{tableRepo: tableRepo}
}

// Create stores a table. Labels are unique per business.
func (s *DiningTableService) Create(table *models.DiningTable) error {
	table.Label = strings.TrimSpace(table.Label)
	if table.Label == "" || table.BusinessID == 0 {
		return ErrTableNotFound
	}
	existing, err := s.tableRepo.GetByLabel(table.BusinessID, table.Label)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrTableNotFound
	}
	return s.tableRepo.Create(table)
}

// Update saves table changes scoped to a business.
func (s *DiningTableService) Update(businessID uint, table *models.DiningTable) error {
	current, err := s.tableRepo.GetByID(table.ID)
	if err != nil {
		return err
	}
	if current == nil || current.BusinessID != businessID {
		return ErrTableNotFound
	}
	table.BusinessID = current.BusinessID
	table.Label = strings.TrimSpace(table.Label)
	if table.Label == "" {
		return ErrTableNotFound
	}
	return s.tableRepo.Update(table)
}

// Delete soft-deletes a table.
func (s *DiningTableService) Delete(businessID, tableID uint) error {
	table, err := s.tableRepo.GetByID(tableID)
	if err != nil {
		return err
	}
	if table == nil || table.BusinessID != businessID {
		return ErrTableNotFound
	}
	return s.tableRepo.Delete(tableID)
}

// List fetches tables for the admin panel.
func (s *DiningTableService) List(filter repository.DiningTableListFilter) ([]models.DiningTable, int64, error) {
	return s.tableRepo.List(filter)
}
