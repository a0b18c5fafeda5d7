package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dev-connect/internal/errs"
	"github.com/sbilibin2017/dev-connect/internal/logger"
	"github.com/sbilibin2017/dev-connect/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection    = "users"
	requestsCollection = "connection_requests"
)

type userDocument struct {
	ID           string    `bson:"_id"`
	FirstName    string    `bson:"first_name"`
	LastName     *string   `bson:"last_name,omitempty"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Age          *int      `bson:"age,omitempty"`
	Gender       *string   `bson:"gender,omitempty"`
	PhotoURL     string    `bson:"photo_url"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (d *userDocument) toModel() (models.UserDB, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return models.UserDB{}, err
	}
	return models.UserDB{
		UserID:       id,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Age:          d.Age,
		Gender:       d.Gender,
		PhotoURL:     d.PhotoURL,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

type requestDocument struct {
	ID         string    `bson:"_id"`
	FromUserID string    `bson:"from_user_id"`
	ToUserID   string    `bson:"to_user_id"`
	PairKey    string    `bson:"pair_key"` // canonical unordered pair, unique
	Status     string    `bson:"status"`
	CreatedAt  time.Time `bson:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

func (d *requestDocument) toModel() (models.ConnectionRequestDB, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return models.ConnectionRequestDB{}, err
	}
	from, err := uuid.Parse(d.FromUserID)
	if err != nil {
		return models.ConnectionRequestDB{}, err
	}
	to, err := uuid.Parse(d.ToUserID)
	if err != nil {
		return models.ConnectionRequestDB{}, err
	}
	return models.ConnectionRequestDB{
		RequestID:  id,
		FromUserID: from,
		ToUserID:   to,
		Status:     models.RequestStatus(d.Status),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}, nil
}

// pairKey orders the two ids so both directions map to the same key.
func pairKey(a, b uuid.UUID) string {
	sa, sb := a.String(), b.String()
	if sa > sb {
		sa, sb = sb, sa
	}
	return sa + ":" + sb
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// EnsureMongoIndexes creates the unique and lookup indexes used by the Mongo repositories.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}},
	})
	logger.Log.Infow("collection", usersCollection, "op", "create_indexes", "error", err)
	if err != nil {
		return err
	}

	_, err = db.Collection(requestsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "pair_key", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "to_user_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "from_user_id", Value: 1}}},
	})
	logger.Log.Infow("collection", requestsCollection, "op", "create_indexes", "error", err)
	return err
}

// UserMongoRepository stores users in MongoDB
type UserMongoRepository struct {
	coll *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Database) *UserMongoRepository {
	return &UserMongoRepository{coll: db.Collection(usersCollection)}
}

// GetByID returns the user or nil when it does not exist.
func (r *UserMongoRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	return r.findOne(ctx, bson.M{"_id": userID.String()})
}

// GetByEmail returns the user with the given email or nil. Emails are stored lower-cased.
func (r *UserMongoRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.UserDB, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)

	logger.Log.Infow(
		"collection", usersCollection,
		"filter", filter,
		"result", doc.ID,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDs returns the users with the given ids.
func (r *UserMongoRepository) GetByIDs(ctx context.Context, userIDs []uuid.UUID) ([]models.UserDB, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": idStrings(userIDs)}}, options.Find())
}

// CountExcluding counts users whose id is not in excluded.
func (r *UserMongoRepository) CountExcluding(ctx context.Context, excluded []uuid.UUID) (int, error) {
	filter := bson.M{"_id": bson.M{"$nin": idStrings(excluded)}}
	total, err := r.coll.CountDocuments(ctx, filter)

	logger.Log.Infow(
		"collection", usersCollection,
		"filter", filter,
		"result", total,
		"error", err,
	)

	return int(total), err
}

// ListExcluding returns a page of users whose id is not in excluded, ordered
// by creation time.
func (r *UserMongoRepository) ListExcluding(ctx context.Context, excluded []uuid.UUID, offset, limit int) ([]models.UserDB, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{"_id": bson.M{"$nin": idStrings(excluded)}}, opts)
}

func (r *UserMongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.UserDB, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		logger.Log.Infow("collection", usersCollection, "filter", filter, "error", err)
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []userDocument
	err = cur.All(ctx, &docs)

	logger.Log.Infow(
		"collection", usersCollection,
		"filter", filter,
		"result", len(docs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	users := make([]models.UserDB, 0, len(docs))
	for i := range docs {
		user, err := docs[i].toModel()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// Create inserts a new user. A taken email yields errs.ErrDuplicate.
func (r *UserMongoRepository) Create(ctx context.Context, user models.NewUser) (*models.UserDB, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := userDocument{
		ID:           uuid.NewString(),
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Age:          user.Age,
		Gender:       user.Gender,
		PhotoURL:     user.PhotoURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := r.coll.InsertOne(ctx, doc)

	logger.Log.Infow(
		"collection", usersCollection,
		"op", "insert",
		"result", doc.ID,
		"error", err,
	)

	if mongo.IsDuplicateKeyError(err) {
		return nil, errs.ErrDuplicate
	}
	if err != nil {
		return nil, err
	}
	created, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProfile applies the non-nil fields of upd and returns the updated
// user, or nil when the user does not exist.
func (r *UserMongoRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.UserDB, error) {
	set := bson.M{"updated_at": time.Now().UTC().Truncate(time.Millisecond)}
	if upd.FirstName != nil {
		set["first_name"] = *upd.FirstName
	}
	if upd.LastName != nil {
		set["last_name"] = *upd.LastName
	}
	if upd.Age != nil {
		set["age"] = *upd.Age
	}
	if upd.Gender != nil {
		set["gender"] = *upd.Gender
	}
	if upd.PhotoURL != nil {
		set["photo_url"] = *upd.PhotoURL
	}

	filter := bson.M{"_id": userID.String()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc)

	logger.Log.Infow(
		"collection", usersCollection,
		"filter", filter,
		"update", set,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces the password hash of a user.
func (r *UserMongoRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	filter := bson.M{"_id": userID.String()}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"password_hash": passwordHash,
		"updated_at":    time.Now().UTC().Truncate(time.Millisecond),
	}})

	var matched int64
	if res != nil {
		matched = res.MatchedCount
	}

	logger.Log.Infow(
		"collection", usersCollection,
		"filter", filter,
		"result", matched,
		"error", err,
	)

	if err != nil {
		return err
	}
	if matched == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ConnectionRequestMongoRepository stores connection requests in MongoDB
type ConnectionRequestMongoRepository struct {
	coll *mongo.Collection
}

func NewConnectionRequestMongoRepository(db *mongo.Database) *ConnectionRequestMongoRepository {
	return &ConnectionRequestMongoRepository{coll: db.Collection(requestsCollection)}
}

// GetByID returns the request or nil when it does not exist.
func (r *ConnectionRequestMongoRepository) GetByID(ctx context.Context, requestID uuid.UUID) (*models.ConnectionRequestDB, error) {
	return r.findOne(ctx, bson.M{"_id": requestID.String()})
}

// GetBetween returns the request linking the two users in either direction, or nil.
func (r *ConnectionRequestMongoRepository) GetBetween(ctx context.Context, userA, userB uuid.UUID) (*models.ConnectionRequestDB, error) {
	a, b := userA.String(), userB.String()
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"from_user_id": a, "to_user_id": b},
		bson.M{"from_user_id": b, "to_user_id": a},
	}})
}

func (r *ConnectionRequestMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.ConnectionRequestDB, error) {
	var doc requestDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)

	logger.Log.Infow(
		"collection", requestsCollection,
		"filter", filter,
		"result", doc.ID,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	req, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListByUser returns every request where userID is sender or recipient,
// optionally restricted to one status.
func (r *ConnectionRequestMongoRepository) ListByUser(ctx context.Context, userID uuid.UUID, status *models.RequestStatus) ([]models.ConnectionRequestDB, error) {
	id := userID.String()
	filter := bson.M{"$or": bson.A{
		bson.M{"from_user_id": id},
		bson.M{"to_user_id": id},
	}}
	if status != nil {
		filter["status"] = string(*status)
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
}

// ListReceived returns requests addressed to userID with the given status,
// newest first.
func (r *ConnectionRequestMongoRepository) ListReceived(ctx context.Context, userID uuid.UUID, status models.RequestStatus) ([]models.ConnectionRequestDB, error) {
	filter := bson.M{"to_user_id": userID.String(), "status": string(status)}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (r *ConnectionRequestMongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.ConnectionRequestDB, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		logger.Log.Infow("collection", requestsCollection, "filter", filter, "error", err)
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []requestDocument
	err = cur.All(ctx, &docs)

	logger.Log.Infow(
		"collection", requestsCollection,
		"filter", filter,
		"result", len(docs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	reqs := make([]models.ConnectionRequestDB, 0, len(docs))
	for i := range docs {
		req, err := docs[i].toModel()
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// Create inserts a new request. The unique pair_key index rejects a second
// request for the same unordered pair with errs.ErrDuplicate.
func (r *ConnectionRequestMongoRepository) Create(ctx context.Context, fromUserID, toUserID uuid.UUID, status models.RequestStatus) (*models.ConnectionRequestDB, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := requestDocument{
		ID:         uuid.NewString(),
		FromUserID: fromUserID.String(),
		ToUserID:   toUserID.String(),
		PairKey:    pairKey(fromUserID, toUserID),
		Status:     string(status),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := r.coll.InsertOne(ctx, doc)

	logger.Log.Infow(
		"collection", requestsCollection,
		"op", "insert",
		"pair_key", doc.PairKey,
		"result", doc.ID,
		"error", err,
	)

	if mongo.IsDuplicateKeyError(err) {
		return nil, errs.ErrDuplicate
	}
	if err != nil {
		return nil, err
	}
	req, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateStatus moves a request from one status to another. It returns nil
// when the request does not exist or is no longer in the expected status.
func (r *ConnectionRequestMongoRepository) UpdateStatus(ctx context.Context, requestID uuid.UUID, from, to models.RequestStatus) (*models.ConnectionRequestDB, error) {
	filter := bson.M{"_id": requestID.String(), "status": string(from)}
	update := bson.M{"$set": bson.M{
		"status":     string(to),
		"updated_at": time.Now().UTC().Truncate(time.Millisecond),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc requestDocument
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)

	logger.Log.Infow(
		"collection", requestsCollection,
		"filter", filter,
		"result", doc.Status,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	req, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &req, nil
}
