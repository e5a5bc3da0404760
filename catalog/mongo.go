package catalog

import (
	"context"

	"medibay/checkout"
	"medibay/db"
	"medibay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Mongo reads the medicines collection and projects documents into the
// checkout core's CatalogItem shape.
type Mongo struct {
	col *mongo.Collection
}

func NewMongo() *Mongo {
	return &Mongo{col: db.MedicineCollection}
}

func (m *Mongo) ListItems(ctx context.Context) ([]checkout.CatalogItem, error) {
	cursor, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.Medicine
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]checkout.CatalogItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, project(d))
	}
	return items, nil
}

func (m *Mongo) GetItem(ctx context.Context, itemID string) (checkout.CatalogItem, error) {
	var doc models.Medicine
	err := m.col.FindOne(ctx, bson.M{"itemId": itemID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return checkout.CatalogItem{}, ErrNotFound
	}
	if err != nil {
		return checkout.CatalogItem{}, err
	}
	return project(doc), nil
}

func project(d models.Medicine) checkout.CatalogItem {
	return checkout.CatalogItem{
		ID:         d.ItemID,
		Name:       d.Name,
		UnitPrice:  d.PriceCents,
		StockLevel: d.StockLevel,
	}
}
