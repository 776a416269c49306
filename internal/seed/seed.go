package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ChecklistItem is one default entry of the materials checklist.
type ChecklistItem struct {
	Slug    string
	TitleRU string
	TitleEN string
}

// DefaultChecklist is the materials checklist offered to every visitor.
var DefaultChecklist = []ChecklistItem{
	{Slug: "primer", TitleRU: "Грунтовка", TitleEN: "Primer"},
	{Slug: "putty", TitleRU: "Шпаклёвка", TitleEN: "Putty"},
	{Slug: "paint", TitleRU: "Краска", TitleEN: "Paint"},
	{Slug: "rollers", TitleRU: "Валики и кисти", TitleEN: "Rollers and brushes"},
	{Slug: "masking-tape", TitleRU: "Малярный скотч", TitleEN: "Masking tape"},
	{Slug: "tile", TitleRU: "Плитка", TitleEN: "Tiles"},
	{Slug: "tile-adhesive", TitleRU: "Плиточный клей", TitleEN: "Tile adhesive"},
	{Slug: "grout", TitleRU: "Затирка", TitleEN: "Grout"},
	{Slug: "spacers", TitleRU: "Крестики для плитки", TitleEN: "Tile spacers"},
	{Slug: "wallpaper", TitleRU: "Обои", TitleEN: "Wallpaper"},
	{Slug: "wallpaper-paste", TitleRU: "Обойный клей", TitleEN: "Wallpaper paste"},
	{Slug: "heating-cable", TitleRU: "Нагревательный кабель или мат", TitleEN: "Heating cable or mat"},
	{Slug: "thermostat", TitleRU: "Терморегулятор", TitleEN: "Thermostat"},
	{Slug: "lamps", TitleRU: "Светильники", TitleEN: "Light fixtures"},
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

// Run executes the startup seed in an idempotent way. Existing items keep
// their slug; titles and order are refreshed from items.
func Run(ctx context.Context, db *sql.DB, items []ChecklistItem) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}
	for i, item := range items {
		if err := ensureChecklistItem(ctx, tx, item, i+1, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureChecklistItem(ctx context.Context, tx *sql.Tx, item ChecklistItem, position int, stats *Stats) error {
	var titleRU, titleEN string
	var currentPos int
	err := tx.QueryRowContext(ctx, `
		SELECT title_ru, title_en, position
		FROM checklist_items
		WHERE slug = ?
	`, item.Slug).Scan(&titleRU, &titleEN, &currentPos)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO checklist_items (slug, title_ru, title_en, position)
			VALUES (?, ?, ?, ?)
		`, item.Slug, item.TitleRU, item.TitleEN, position); err != nil {
			return fmt.Errorf("insert checklist item %s: %w", item.Slug, err)
		}
		stats.Inserts++
		return nil
	case err != nil:
		return fmt.Errorf("check checklist item %s: %w", item.Slug, err)
	}

	if titleRU == item.TitleRU && titleEN == item.TitleEN && currentPos == position {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE checklist_items
		SET title_ru = ?, title_en = ?, position = ?
		WHERE slug = ?
	`, item.TitleRU, item.TitleEN, position, item.Slug); err != nil {
		return fmt.Errorf("update checklist item %s: %w", item.Slug, err)
	}
	stats.Updates++
	return nil
}
