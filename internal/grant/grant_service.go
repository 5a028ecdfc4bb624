package grant

import (
	"context"
	"database/sql"
	"strings"
	"time"

	granterrors "go-hrms/internal/grant/errors"
	"go-hrms/internal/shared/cache"
	"go-hrms/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	OptionsCacheKey = "grants:options"
	optionsTTL      = time.Hour
)

//go:generate mockgen -source=grant_service.go -destination=mock/grant_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateGrantRequest) (GrantResponse, error)
	GetAll(ctx context.Context, req ListGrantsRequest) ([]GrantResponse, int64, error)
	Export(ctx context.Context, req ListGrantsRequest) ([]GrantResponse, error)
	GetOptions(ctx context.Context) ([]GrantOption, error)
	GetByID(ctx context.Context, id string) (GrantResponse, error)
	Update(ctx context.Context, id string, req UpdateGrantRequest) (GrantResponse, error)
	Delete(ctx context.Context, id string) error

	CreateItem(ctx context.Context, grantID string, req GrantItemRequest) (GrantItemResponse, error)
	GetItems(ctx context.Context, grantID string) ([]GrantItemResponse, error)
	GetItem(ctx context.Context, id string) (GrantItemResponse, error)
	UpdateItem(ctx context.Context, id string, req GrantItemRequest) (GrantItemResponse, error)
	DeleteItem(ctx context.Context, id string) error
	GetSlots(ctx context.Context, itemID string) ([]SlotResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	cache  *cache.Cache
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, c *cache.Cache, logger ...*zap.Logger) Service {
	l := zap.L().Named("grant.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("grant.service")
	}
	return &service{db: db, repo: repo, cache: c, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateGrantRequest) (GrantResponse, error) {
	g := &Grant{ID: uuid.New()}
	if err := applyGrantRequest(g, req); err != nil {
		return GrantResponse{}, err
	}

	if err := s.repo.Create(ctx, g); err != nil {
		s.logger.Error("create grant failed", zap.String("code", g.Code), zap.Error(err))
		return GrantResponse{}, mapRepositoryError(err)
	}

	s.cache.Invalidate(ctx, OptionsCacheKey)
	s.logger.Info("grant created", zap.String("grant_id", g.ID.String()), zap.String("code", g.Code))
	return mapGrantToResponse(*g, 0), nil
}

func (s *service) GetAll(ctx context.Context, req ListGrantsRequest) ([]GrantResponse, int64, error) {
	req.Params = req.Params.Normalize()

	grants, total, err := s.repo.FindAll(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, len(grants))
	for i, g := range grants {
		ids[i] = g.ID.String()
	}
	counts, err := s.repo.CountItems(ctx, ids...)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]GrantResponse, len(grants))
	for i, g := range grants {
		resp[i] = mapGrantToResponse(g, counts[g.ID.String()])
	}
	return resp, total, nil
}

// Export returns every matching grant with its items and no slot detail.
func (s *service) Export(ctx context.Context, req ListGrantsRequest) ([]GrantResponse, error) {
	req.Params = req.Params.Normalize()
	if req.SortBy == "" {
		req.SortOrder = "asc"
	}

	grants, err := s.repo.FindAllWithItems(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := make([]GrantResponse, len(grants))
	for i, g := range grants {
		resp[i] = mapGrantToResponse(g, len(g.Items))
		resp[i].Items = make([]GrantItemResponse, len(g.Items))
		for j, item := range g.Items {
			resp[i].Items[j] = mapItemToResponse(item, nil, nil)
		}
	}
	return resp, nil
}

func (s *service) GetOptions(ctx context.Context) ([]GrantOption, error) {
	return cache.Remember(ctx, s.cache, OptionsCacheKey, optionsTTL, func(ctx context.Context) ([]GrantOption, error) {
		grants, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]GrantOption, len(grants))
		for i, g := range grants {
			opts[i] = GrantOption{ID: g.ID.String(), Code: g.Code, Name: g.Name, IsOrgFunded: g.IsOrgFunded}
		}
		return opts, nil
	})
}

// GetByID returns the grant with items, slots and who holds each slot.
func (s *service) GetByID(ctx context.Context, id string) (GrantResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return GrantResponse{}, granterrors.ErrInvalidGrantID
	}

	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return GrantResponse{}, mapRepositoryError(err)
	}

	items, err := s.itemsWithSlots(ctx, id)
	if err != nil {
		return GrantResponse{}, err
	}

	resp := mapGrantToResponse(*g, len(items))
	resp.Items = items
	return resp, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateGrantRequest) (GrantResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return GrantResponse{}, granterrors.ErrInvalidGrantID
	}

	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return GrantResponse{}, mapRepositoryError(err)
	}
	if err := applyGrantRequest(g, req); err != nil {
		return GrantResponse{}, err
	}
	if err := s.repo.Update(ctx, g); err != nil {
		return GrantResponse{}, mapRepositoryError(err)
	}

	s.cache.Invalidate(ctx, OptionsCacheKey)
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return granterrors.ErrInvalidGrantID
	}

	active, err := s.repo.CountActiveAllocations(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return granterrors.ErrGrantInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.cache.Invalidate(ctx, OptionsCacheKey)
	s.logger.Info("grant deleted", zap.String("grant_id", id))
	return nil
}

func (s *service) CreateItem(ctx context.Context, grantID string, req GrantItemRequest) (GrantItemResponse, error) {
	if _, err := uuid.Parse(grantID); err != nil {
		return GrantItemResponse{}, granterrors.ErrInvalidGrantID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return GrantItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	g, err := qtx.FindByID(ctx, grantID)
	if err != nil {
		return GrantItemResponse{}, mapRepositoryError(err)
	}

	item := &GrantItem{ID: uuid.New(), GrantID: g.ID}
	applyItemRequest(item, req)
	if err := qtx.CreateItem(ctx, item); err != nil {
		return GrantItemResponse{}, mapRepositoryError(err)
	}
	if err := reconcileSlots(ctx, qtx, *item, false); err != nil {
		return GrantItemResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return GrantItemResponse{}, err
	}

	s.logger.Info("grant item created",
		zap.String("grant_id", grantID),
		zap.String("item_id", item.ID.String()),
		zap.Int("position_number", item.PositionNumber),
	)
	return s.GetItem(ctx, item.ID.String())
}

func (s *service) GetItems(ctx context.Context, grantID string) ([]GrantItemResponse, error) {
	if _, err := uuid.Parse(grantID); err != nil {
		return nil, granterrors.ErrInvalidGrantID
	}
	if _, err := s.repo.FindByID(ctx, grantID); err != nil {
		return nil, mapRepositoryError(err)
	}
	return s.itemsWithSlots(ctx, grantID)
}

func (s *service) GetItem(ctx context.Context, id string) (GrantItemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return GrantItemResponse{}, granterrors.ErrInvalidGrantItemID
	}

	item, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		return GrantItemResponse{}, mapItemError(err)
	}

	slots, occupants, err := s.slotsFor(ctx, id)
	if err != nil {
		return GrantItemResponse{}, err
	}
	return mapItemToResponse(*item, slots, occupants), nil
}

// UpdateItem reconciles slots 1..position_number. Shrinking fails when a
// slot that would be removed is still held by an active allocation.
func (s *service) UpdateItem(ctx context.Context, id string, req GrantItemRequest) (GrantItemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return GrantItemResponse{}, granterrors.ErrInvalidGrantItemID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return GrantItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	item, err := qtx.FindItemByID(ctx, id)
	if err != nil {
		return GrantItemResponse{}, mapItemError(err)
	}
	budgetLine := item.BudgetLineCode

	applyItemRequest(item, req)
	if err := qtx.UpdateItem(ctx, item); err != nil {
		return GrantItemResponse{}, mapItemError(err)
	}
	if err := reconcileSlots(ctx, qtx, *item, budgetLine != item.BudgetLineCode); err != nil {
		return GrantItemResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return GrantItemResponse{}, err
	}
	return s.GetItem(ctx, id)
}

func (s *service) DeleteItem(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return granterrors.ErrInvalidGrantItemID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	slots, err := qtx.FindSlots(ctx, id)
	if err != nil {
		return err
	}
	slotIDs := make([]string, len(slots))
	for i, sl := range slots {
		slotIDs[i] = sl.ID.String()
	}
	occupants, err := qtx.Occupants(ctx, slotIDs...)
	if err != nil {
		return err
	}
	if len(occupants) > 0 {
		return granterrors.ErrGrantItemInUse
	}

	if err := qtx.DeleteSlots(ctx, slotIDs); err != nil {
		return err
	}
	if err := qtx.DeleteItem(ctx, id); err != nil {
		return mapItemError(err)
	}
	return tx.Commit()
}

func (s *service) GetSlots(ctx context.Context, itemID string) ([]SlotResponse, error) {
	if _, err := uuid.Parse(itemID); err != nil {
		return nil, granterrors.ErrInvalidGrantItemID
	}
	if _, err := s.repo.FindItemByID(ctx, itemID); err != nil {
		return nil, mapItemError(err)
	}

	slots, occupants, err := s.slotsFor(ctx, itemID)
	if err != nil {
		return nil, err
	}
	resp := make([]SlotResponse, len(slots))
	for i, sl := range slots {
		resp[i] = mapSlotToResponse(sl, occupants)
	}
	return resp, nil
}

func (s *service) itemsWithSlots(ctx context.Context, grantID string) ([]GrantItemResponse, error) {
	items, err := s.repo.FindItems(ctx, grantID)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]string, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID.String()
	}
	slots, occupants, err := s.slotsFor(ctx, itemIDs...)
	if err != nil {
		return nil, err
	}

	byItem := make(map[uuid.UUID][]PositionSlot, len(items))
	for _, sl := range slots {
		byItem[sl.GrantItemID] = append(byItem[sl.GrantItemID], sl)
	}

	resp := make([]GrantItemResponse, len(items))
	for i, item := range items {
		resp[i] = mapItemToResponse(item, byItem[item.ID], occupants)
	}
	return resp, nil
}

func (s *service) slotsFor(ctx context.Context, itemIDs ...string) ([]PositionSlot, map[string]Occupant, error) {
	slots, err := s.repo.FindSlots(ctx, itemIDs...)
	if err != nil {
		return nil, nil, err
	}
	slotIDs := make([]string, len(slots))
	for i, sl := range slots {
		slotIDs[i] = sl.ID.String()
	}
	occupants, err := s.repo.Occupants(ctx, slotIDs...)
	if err != nil {
		return nil, nil, err
	}
	return slots, occupants, nil
}

// reconcileSlots makes the item's slots exactly 1..PositionNumber.
func reconcileSlots(ctx context.Context, qtx Repository, item GrantItem, budgetLineChanged bool) error {
	existing, err := qtx.FindSlots(ctx, item.ID.String())
	if err != nil {
		return err
	}

	have := make(map[int]bool, len(existing))
	var surplus []string
	for _, sl := range existing {
		if sl.SlotNumber > item.PositionNumber {
			surplus = append(surplus, sl.ID.String())
			continue
		}
		have[sl.SlotNumber] = true
	}

	if len(surplus) > 0 {
		occupied, err := qtx.Occupants(ctx, surplus...)
		if err != nil {
			return err
		}
		if len(occupied) > 0 {
			return granterrors.ErrSlotsOccupied
		}
		if err := qtx.DeleteSlots(ctx, surplus); err != nil {
			return err
		}
	}

	if budgetLineChanged {
		if err := qtx.UpdateSlotBudgetLine(ctx, item.ID.String(), item.BudgetLineCode); err != nil {
			return err
		}
	}

	var missing []PositionSlot
	for n := 1; n <= item.PositionNumber; n++ {
		if have[n] {
			continue
		}
		missing = append(missing, PositionSlot{
			ID:             uuid.New(),
			GrantItemID:    item.ID,
			SlotNumber:     n,
			BudgetLineCode: item.BudgetLineCode,
		})
	}
	return qtx.CreateSlots(ctx, missing)
}

func applyGrantRequest(g *Grant, req CreateGrantRequest) error {
	start, err := dateutil.ParseOptional(req.StartDate)
	if err != nil {
		return granterrors.ErrInvalidEndDate
	}
	end, err := dateutil.ParseOptional(req.EndDate)
	if err != nil || (start != nil && end != nil && end.Before(*start)) {
		return granterrors.ErrInvalidEndDate
	}

	g.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	g.Name = strings.TrimSpace(req.Name)
	g.Organization = strings.TrimSpace(req.Organization)
	g.Description = req.Description
	g.StartDate = start
	g.EndDate = end
	g.IsOrgFunded = req.IsOrgFunded
	return nil
}

func applyItemRequest(item *GrantItem, req GrantItemRequest) {
	item.PositionTitle = strings.TrimSpace(req.PositionTitle)
	item.GrantSalary = req.GrantSalary
	item.GrantBenefit = req.GrantBenefit
	item.LevelOfEffort = req.LevelOfEffort
	item.PositionNumber = req.PositionNumber
	item.BudgetLineCode = strings.TrimSpace(req.BudgetLineCode)
}

func mapGrantToResponse(g Grant, itemsCount int) GrantResponse {
	return GrantResponse{
		ID:           g.ID.String(),
		Code:         g.Code,
		Name:         g.Name,
		Organization: g.Organization,
		Description:  g.Description,
		StartDate:    dateutil.FormatPtr(g.StartDate),
		EndDate:      dateutil.FormatPtr(g.EndDate),
		IsOrgFunded:  g.IsOrgFunded,
		ItemsCount:   itemsCount,
		CreatedAt:    g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    g.UpdatedAt.Format(time.RFC3339),
	}
}

func mapItemToResponse(item GrantItem, slots []PositionSlot, occupants map[string]Occupant) GrantItemResponse {
	resp := GrantItemResponse{
		ID:             item.ID.String(),
		GrantID:        item.GrantID.String(),
		PositionTitle:  item.PositionTitle,
		GrantSalary:    item.GrantSalary,
		GrantBenefit:   item.GrantBenefit,
		LevelOfEffort:  item.LevelOfEffort,
		PositionNumber: item.PositionNumber,
		BudgetLineCode: item.BudgetLineCode,
	}
	if slots == nil {
		return resp
	}
	resp.Slots = make([]SlotResponse, len(slots))
	for i, sl := range slots {
		resp.Slots[i] = mapSlotToResponse(sl, occupants)
		if resp.Slots[i].Occupied {
			resp.FilledSlots++
		}
	}
	return resp
}

func mapSlotToResponse(sl PositionSlot, occupants map[string]Occupant) SlotResponse {
	resp := SlotResponse{
		ID:             sl.ID.String(),
		GrantItemID:    sl.GrantItemID.String(),
		SlotNumber:     sl.SlotNumber,
		BudgetLineCode: sl.BudgetLineCode,
	}
	if o, ok := occupants[sl.ID.String()]; ok {
		resp.Occupied = true
		resp.Occupant = &OccupantResponse{
			AllocationID: o.AllocationID,
			EmployeeID:   o.EmployeeID,
			StaffID:      o.StaffID,
			EmployeeName: o.EmployeeName,
			FTE:          o.FTE,
		}
	}
	return resp
}
