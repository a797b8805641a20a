package postgres

import (
	"testing"
	"time"

	"warebill/internal/core/entity"
	"warebill/internal/core/id"

	"github.com/stretchr/testify/assert"
)

type MockCatalog struct {
	entity.BaseCatalog
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}

type MockDocument struct {
	entity.BaseDocument
	Number string `db:"number" json:"number"`
}

func TestExtractDBColumns_Embedded(t *testing.T) {
	cols := ExtractDBColumns[MockCatalog]()

	expectedCols := []string{
		"id", "deletion_mark", "version", "code", "name",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
}

func TestExtractDBColumns_DocumentAudit(t *testing.T) {
	cols := ExtractDBColumns[MockDocument]()

	expectedCols := []string{
		"id", "version", "created_at", "updated_at", "created_by", "updated_by", "number",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
}

func TestStructToMap_Embedded(t *testing.T) {
	cat := MockCatalog{
		BaseCatalog: entity.BaseCatalog{
			BaseEntity: entity.BaseEntity{
				ID:           id.New(),
				DeletionMark: true,
				Version:      5,
			},
		},
		Code: "TEST",
		Name: "Test Name",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "TEST", m["code"])
	assert.Equal(t, "Test Name", m["name"])
}

func TestStructToMap_DocumentAudit(t *testing.T) {
	now := time.Now().UTC()
	doc := MockDocument{
		BaseDocument: entity.BaseDocument{
			BaseEntity: entity.NewBaseEntity(),
			CreatedAt:  now,
			UpdatedAt:  now,
			CreatedBy:  "user-1",
		},
		Number: "ORD-2026-00001",
	}

	m := StructToMap(doc)

	assert.Equal(t, now, m["created_at"])
	assert.Equal(t, "user-1", m["created_by"])
	assert.Equal(t, "ORD-2026-00001", m["number"])
}
