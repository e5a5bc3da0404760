package orders

import (
	"context"

	"medibay/checkout"
	"medibay/db"
	"medibay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Archive persists completed handoffs. It is a collaborator beside the
// checkout core, not part of it: the core stays storage-free and the
// archive only ever sees finished drafts.
type Archive interface {
	Save(ctx context.Context, order models.Order) error
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
}

type MongoArchive struct {
	col *mongo.Collection
}

func NewMongoArchive() *MongoArchive {
	return &MongoArchive{col: db.OrderCollection}
}

func (a *MongoArchive) Save(ctx context.Context, order models.Order) error {
	_, err := a.col.InsertOne(ctx, order)
	return err
}

func (a *MongoArchive) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := a.col.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Order
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FromHandoff flattens a handed-off draft and its selection into the
// archive document shape.
func FromHandoff(userID string, draft *checkout.OrderDraft, sel checkout.PaymentSelection) models.Order {
	lines := make([]models.OrderLine, 0, len(draft.Lines))
	for _, l := range draft.Lines {
		lines = append(lines, models.OrderLine{
			ItemID:     l.Item.ID,
			Name:       l.Item.Name,
			PriceCents: l.Item.UnitPrice,
			Quantity:   l.Quantity,
		})
	}
	return models.Order{
		OrderID:       draft.Reference,
		UserID:        userID,
		Lines:         lines,
		TotalCents:    draft.Total,
		BuyerName:     draft.Buyer.Name,
		BuyerEmail:    draft.Buyer.Email,
		BuyerPhone:    draft.Buyer.Phone,
		PaymentMethod: string(sel.Method),
		Status:        "handed_off",
		CreatedAt:     draft.CreatedAt,
	}
}
