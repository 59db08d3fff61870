package m_beverage

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnsMatchDataTags(t *testing.T) {
	typ := reflect.TypeOf(Data{})
	cols := Columns()

	assert.Equal(t, typ.NumField(), len(cols))
	for i, col := range cols {
		assert.Equal(t, col, typ.Field(i).Tag.Get("spanner"), "field %s", typ.Field(i).Name)
	}
}

func TestModel_Mutations(t *testing.T) {
	m := NewModel()

	assert.NotNil(t, m.InsertMut(&Data{Dataset: "d", RowIndex: 1, Cafe: "Mega", Name: "Latte"}))
	assert.NotNil(t, m.DeleteDatasetMut("d"))
}
