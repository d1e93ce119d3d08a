package repositories

import (
	"context"

	"grocery-recipe/constants"
	"grocery-recipe/models"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type itemDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	ItemName string             `bson:"itemname"`
	Category string             `bson:"category"`
	Quantity float64            `bson:"quantity"`
	Email    string             `bson:"email"`
}

func (d itemDocument) toModel() models.Item {
	return models.Item{
		ID:       d.ID.Hex(),
		ItemName: d.ItemName,
		Category: d.Category,
		Quantity: d.Quantity,
		Email:    d.Email,
	}
}

type MongoItemRepository struct {
	collection *mongo.Collection
}

func NewMongoItemRepository(db *mongo.Database) IItemRepository {
	return &MongoItemRepository{collection: db.Collection(constants.CollectionItems)}
}

func (r *MongoItemRepository) Create(ctx context.Context, newItem models.Item) (*models.Item, error) {
	if err := newItem.Validate(); err != nil {
		return nil, err
	}

	doc := itemDocument{
		ID:       primitive.NewObjectID(),
		ItemName: newItem.ItemName,
		Category: newItem.Category,
		Quantity: newItem.Quantity,
		Email:    newItem.Email,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "could not insert item")
	}

	item := doc.toModel()
	return &item, nil
}

// Delete 不正なIDや存在しないIDでもエラーにしない
func (r *MongoItemRepository) Delete(ctx context.Context, itemID string) error {
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil
	}
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return errors.Wrap(err, "could not delete item")
	}
	return nil
}

func (r *MongoItemRepository) FindByEmail(ctx context.Context, email string) ([]models.Item, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, errors.Wrap(err, "could not list items")
	}

	var docs []itemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "could not decode items")
	}

	items := make([]models.Item, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.toModel())
	}
	return items, nil
}

func (r *MongoItemRepository) FindByID(ctx context.Context, itemID string) (*models.Item, error) {
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, nil
	}

	var doc itemDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "could not find item")
	}

	item := doc.toModel()
	return &item, nil
}

func (r *MongoItemRepository) Update(ctx context.Context, item models.Item) (*models.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return nil, nil
	}

	update := bson.M{"$set": bson.M{
		"itemname": item.ItemName,
		"category": item.Category,
		"quantity": item.Quantity,
		"email":    item.Email,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc itemDocument
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "could not update item")
	}

	updated := doc.toModel()
	return &updated, nil
}
