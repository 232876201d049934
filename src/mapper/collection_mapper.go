package mapper

import "cardexcli/src/model"

// TransformCollection maps a collection to its display shape. The pack
// price is the collection's own price.
func TransformCollection(col model.Collection) model.CollectionView {
	return model.CollectionView{
		ID:          col.ID,
		Name:        orDefault(col.Name, UnknownCollection),
		Description: orDefault(col.Description, NoDescription),
		CardCount:   col.CardCount,
		PackPrice:   col.Price,
	}
}
