package repositories

import (
	"context"

	"grocery-recipe/constants"
	"grocery-recipe/models"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// userDocument 登録時の任意のフィールドはemail/passwordと同じ階層に保存する
type userDocument struct {
	ID       primitive.ObjectID     `bson:"_id,omitempty"`
	Email    string                 `bson:"email"`
	Password string                 `bson:"password"`
	Profile  map[string]interface{} `bson:",inline"`
}

func (d userDocument) toModel() models.User {
	profile := make(map[string]interface{}, len(d.Profile))
	for k, v := range d.Profile {
		if k == "__v" {
			continue
		}
		profile[k] = v
	}
	return models.User{
		ID:       d.ID.Hex(),
		Email:    d.Email,
		Password: d.Password,
		Profile:  profile,
	}
}

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) IUserRepository {
	return &MongoUserRepository{collection: db.Collection(constants.CollectionUsers)}
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	doc := userDocument{
		ID:       primitive.NewObjectID(),
		Email:    user.Email,
		Password: user.Password,
		Profile:  user.Profile,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "could not insert user")
	}

	created := doc.toModel()
	return &created, nil
}

func (r *MongoUserRepository) FindUsersByEmail(ctx context.Context, email string) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, errors.Wrap(err, "could not find users")
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "could not decode users")
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toModel())
	}
	return users, nil
}

func (r *MongoUserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}

	var doc userDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "could not find user")
	}

	user := doc.toModel()
	return &user, nil
}
