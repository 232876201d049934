package mapper

import (
	"testing"

	"cardexcli/src/model"

	"github.com/stretchr/testify/assert"
)

func TestTransformCollection(t *testing.T) {
	view := TransformCollection(model.Collection{
		ID:          "col-1",
		Name:        "Nismo Collection",
		Description: "Exclusive Nissan performance editions",
		CardCount:   15,
		Price:       1800,
	})

	assert.Equal(t, "Nismo Collection", view.Name)
	assert.Equal(t, "Exclusive Nissan performance editions", view.Description)
	assert.Equal(t, 15, view.CardCount)
	assert.Equal(t, 1800, view.PackPrice, "pack price comes from the collection price")
}

func TestTransformCollection_Defaults(t *testing.T) {
	view := TransformCollection(model.Collection{})

	assert.Equal(t, UnknownCollection, view.Name)
	assert.Equal(t, NoDescription, view.Description)
	assert.Equal(t, 0, view.CardCount)
	assert.Equal(t, 0, view.PackPrice)
}
