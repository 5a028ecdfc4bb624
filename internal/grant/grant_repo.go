package grant

import (
	"context"
	"database/sql"
	"strings"

	"go-hrms/internal/shared/dbtx"
	"go-hrms/internal/shared/query"

	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"code":       "code",
	"name":       "name",
	"end_date":   "end_date",
	"created_at": "created_at",
}

//go:generate mockgen -source=grant_repo.go -destination=mock/grant_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, g *Grant) error
	FindAll(ctx context.Context, req ListGrantsRequest) ([]Grant, int64, error)
	FindAllWithItems(ctx context.Context, req ListGrantsRequest) ([]Grant, error)
	FindOptions(ctx context.Context) ([]Grant, error)
	FindByID(ctx context.Context, id string) (*Grant, error)
	CountItems(ctx context.Context, grantIDs ...string) (map[string]int, error)
	Update(ctx context.Context, g *Grant) error
	Delete(ctx context.Context, id string) error

	CreateItem(ctx context.Context, item *GrantItem) error
	FindItems(ctx context.Context, grantID string) ([]GrantItem, error)
	FindItemByID(ctx context.Context, id string) (*GrantItem, error)
	UpdateItem(ctx context.Context, item *GrantItem) error
	DeleteItem(ctx context.Context, id string) error

	FindSlots(ctx context.Context, itemIDs ...string) ([]PositionSlot, error)
	FindSlotByID(ctx context.Context, id string) (*PositionSlot, error)
	CreateSlots(ctx context.Context, slots []PositionSlot) error
	UpdateSlotBudgetLine(ctx context.Context, itemID, code string) error
	DeleteSlots(ctx context.Context, ids []string) error
	Occupants(ctx context.Context, slotIDs ...string) (map[string]Occupant, error)
	CountActiveAllocations(ctx context.Context, grantID string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, g *Grant) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit("Items").Create(g).Error
}

func (r *repository) filtered(ctx context.Context, req ListGrantsRequest) *gorm.DB {
	q := dbtx.Conn(ctx, r.db, r.tx).
		Model(&Grant{}).
		Scopes(
			query.Eq("organization", req.Organization),
			query.Search(req.Search, "code", "name"),
		)
	if req.IsOrgFunded != nil {
		q = q.Where("is_org_funded = ?", *req.IsOrgFunded)
	}
	return q
}

func (r *repository) FindAll(ctx context.Context, req ListGrantsRequest) ([]Grant, int64, error) {
	var (
		grants []Grant
		total  int64
	)
	if err := r.filtered(ctx, req).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.filtered(ctx, req).
		Scopes(query.Sort(req.Params, sortColumns, "code"), query.Paginate(req.Params)).
		Find(&grants).Error
	return grants, total, err
}

func (r *repository) FindAllWithItems(ctx context.Context, req ListGrantsRequest) ([]Grant, error) {
	var grants []Grant
	err := r.filtered(ctx, req).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position_title ASC") }).
		Scopes(query.Sort(req.Params, sortColumns, "code")).
		Find(&grants).Error
	return grants, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Grant, error) {
	var grants []Grant
	err := dbtx.Conn(ctx, r.db, r.tx).
		Select("id", "code", "name", "is_org_funded").
		Order("code ASC").
		Find(&grants).Error
	return grants, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Grant, error) {
	var g Grant
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("id = ?", id).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repository) CountItems(ctx context.Context, grantIDs ...string) (map[string]int, error) {
	counts := make(map[string]int, len(grantIDs))
	if len(grantIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		GrantID string
		Total   int
	}
	err := dbtx.Conn(ctx, r.db, r.tx).
		Model(&GrantItem{}).
		Select("grant_id, COUNT(*) AS total").
		Where("grant_id IN ?", grantIDs).
		Group("grant_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.GrantID] = row.Total
	}
	return counts, nil
}

func (r *repository) Update(ctx context.Context, g *Grant) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit("Items").Save(g).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Where("id = ?", id).
		Delete(&Grant{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateItem(ctx context.Context, item *GrantItem) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit("Slots").Create(item).Error
}

func (r *repository) FindItems(ctx context.Context, grantID string) ([]GrantItem, error) {
	var items []GrantItem
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("grant_id = ?", grantID).
		Order("position_title ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindItemByID(ctx context.Context, id string) (*GrantItem, error) {
	var item GrantItem
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) UpdateItem(ctx context.Context, item *GrantItem) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit("Slots").Save(item).Error
}

func (r *repository) DeleteItem(ctx context.Context, id string) error {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Where("id = ?", id).
		Delete(&GrantItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindSlots(ctx context.Context, itemIDs ...string) ([]PositionSlot, error) {
	var slots []PositionSlot
	if len(itemIDs) == 0 {
		return slots, nil
	}
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("grant_item_id IN ?", itemIDs).
		Order("grant_item_id, slot_number ASC").
		Find(&slots).Error
	return slots, err
}

func (r *repository) FindSlotByID(ctx context.Context, id string) (*PositionSlot, error) {
	var slot PositionSlot
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("id = ?", id).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *repository) CreateSlots(ctx context.Context, slots []PositionSlot) error {
	if len(slots) == 0 {
		return nil
	}
	return dbtx.Conn(ctx, r.db, r.tx).Create(&slots).Error
}

func (r *repository) UpdateSlotBudgetLine(ctx context.Context, itemID, code string) error {
	return dbtx.Conn(ctx, r.db, r.tx).
		Model(&PositionSlot{}).
		Where("grant_item_id = ?", itemID).
		Update("budget_line_code", code).Error
}

func (r *repository) DeleteSlots(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return dbtx.Conn(ctx, r.db, r.tx).
		Where("id IN ?", ids).
		Delete(&PositionSlot{}).Error
}

// Occupants reads funding_allocations directly to avoid an import cycle with
// the allocation package.
func (r *repository) Occupants(ctx context.Context, slotIDs ...string) (map[string]Occupant, error) {
	out := make(map[string]Occupant, len(slotIDs))
	if len(slotIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		SlotID       string
		AllocationID string
		EmployeeID   string
		StaffID      string
		FirstNameEN  string
		LastNameEN   string
		FTE          int
	}
	err := dbtx.Conn(ctx, r.db, r.tx).
		Table("funding_allocations AS fa").
		Select(`fa.position_slot_id AS slot_id, fa.id AS allocation_id, fa.employee_id,
			e.staff_id, e.first_name_en, e.last_name_en, fa.fte`).
		Joins("JOIN employees e ON e.id = fa.employee_id").
		Where("fa.position_slot_id IN ? AND fa.status = ? AND fa.deleted_at IS NULL", slotIDs, "active").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.SlotID] = Occupant{
			SlotID:       row.SlotID,
			AllocationID: row.AllocationID,
			EmployeeID:   row.EmployeeID,
			StaffID:      row.StaffID,
			EmployeeName: strings.TrimSpace(row.FirstNameEN + " " + row.LastNameEN),
			FTE:          row.FTE,
		}
	}
	return out, nil
}

func (r *repository) CountActiveAllocations(ctx context.Context, grantID string) (int64, error) {
	var count int64
	err := dbtx.Conn(ctx, r.db, r.tx).
		Table("funding_allocations AS fa").
		Joins("LEFT JOIN position_slots ps ON ps.id = fa.position_slot_id").
		Joins("LEFT JOIN grant_items gi ON gi.id = ps.grant_item_id").
		Where("fa.status = ? AND fa.deleted_at IS NULL", "active").
		Where("(gi.grant_id = ? OR fa.grant_id = ?)", grantID, grantID).
		Count(&count).Error
	return count, err
}
