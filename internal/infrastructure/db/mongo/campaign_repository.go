package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prospectio/outreach-system/internal/core/domain"
)

const campaignCollection = "campaigns"

// MongoCampaignRepository persists campaigns. Campaigns are stored with
// their domain bson tags directly; ids are ObjectID hex strings assigned at
// insert time.
type MongoCampaignRepository struct {
	coll *mongo.Collection
}

func NewCampaignRepository(db *mongo.Database) *MongoCampaignRepository {
	return &MongoCampaignRepository{coll: db.Collection(campaignCollection)}
}

func (r *MongoCampaignRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_by", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create owner index: %w", err)
	}
	return nil
}

// ownedFilter is the compound filter applied to every read, update and
// delete. Not-found and not-owned are indistinguishable to callers.
func ownedFilter(id, ownerID string) bson.M {
	return bson.M{"_id": id, "created_by": ownerID}
}

func (r *MongoCampaignRepository) Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	c.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return nil, fmt.Errorf("insert campaign: %w", err)
	}
	return c, nil
}

func (r *MongoCampaignRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Campaign, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"created_by": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer cursor.Close(ctx)

	campaigns := []*domain.Campaign{}
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, fmt.Errorf("decode campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *MongoCampaignRepository) FindByID(ctx context.Context, id, ownerID string) (*domain.Campaign, error) {
	var c domain.Campaign
	if err := r.coll.FindOne(ctx, ownedFilter(id, ownerID)).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("find campaign: %w", err)
	}
	return &c, nil
}

func (r *MongoCampaignRepository) Update(ctx context.Context, id, ownerID string, fields map[string]any) (*domain.Campaign, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	var c domain.Campaign
	err := r.coll.FindOneAndUpdate(
		ctx,
		ownedFilter(id, ownerID),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	return &c, nil
}

func (r *MongoCampaignRepository) Delete(ctx context.Context, id, ownerID string) (*domain.Campaign, error) {
	var c domain.Campaign
	if err := r.coll.FindOneAndDelete(ctx, ownedFilter(id, ownerID)).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("delete campaign: %w", err)
	}
	return &c, nil
}

func (r *MongoCampaignRepository) SetSearchResults(ctx context.Context, id, ownerID string, source domain.SearchSource, set *domain.SearchResultSet) error {
	field := "linkedin_search_results"
	if source == domain.SourceGithub {
		field = "github_search_results"
	}

	res, err := r.coll.UpdateOne(
		ctx,
		ownedFilter(id, ownerID),
		bson.M{"$set": bson.M{field: set, "updated_at": set.LastUpdated}},
	)
	if err != nil {
		return fmt.Errorf("store search results: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}
