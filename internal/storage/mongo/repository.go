package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/DjordjeVuckovic/news-lens/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	articlesCollection = "articles"
	relatedCollection  = "related_articles"
	countersCollection = "counters"
)

type articleDoc struct {
	ID                int64                       `bson:"_id"`
	URL               string                      `bson:"url,omitempty"`
	Title             string                      `bson:"title"`
	Content           string                      `bson:"content"`
	Source            string                      `bson:"source"`
	BiasScore         *int                        `bson:"bias_score,omitempty"`
	PoliticalLeaning  string                      `bson:"political_leaning"`
	EmotionalLanguage string                      `bson:"emotional_language"`
	FactualReporting  string                      `bson:"factual_reporting"`
	NeutralVersion    *string                     `bson:"neutral_version,omitempty"`
	AnalysisDetails   *domain.BiasAnalysisDetails `bson:"analysis_details,omitempty"`
	CreatedAt         time.Time                   `bson:"created_at"`
}

type relatedDoc struct {
	ID                int64     `bson:"_id"`
	OriginalArticleID int64     `bson:"original_article_id"`
	URL               string    `bson:"url"`
	Title             string    `bson:"title"`
	Content           string    `bson:"content"`
	Source            string    `bson:"source"`
	BiasScore         *int      `bson:"bias_score,omitempty"`
	KeyTerms          []string  `bson:"key_terms"`
	PublishedDate     string    `bson:"published_date"`
	Topics            []string  `bson:"topics"`
	MainTopic         string    `bson:"main_topic"`
	CreatedAt         time.Time `bson:"created_at"`
}

// Repository keeps articles in MongoDB. Integer ids come from a counters
// collection so they match the other backends.
type Repository struct {
	articles *mongo.Collection
	related  *mongo.Collection
	counters *mongo.Collection
}

// NewRepository creates the indexes the repository relies on.
func NewRepository(ctx context.Context, client *Client) (*Repository, error) {
	r := &Repository{
		articles: client.database.Collection(articlesCollection),
		related:  client.database.Collection(relatedCollection),
		counters: client.database.Collection(countersCollection),
	}

	// sparse so free text articles without a url never collide
	_, err := r.articles.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "url", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create article indexes: %w", err)
	}

	_, err = r.related.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "original_article_id", Value: 1}, {Key: "_id", Value: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create related article index: %w", err)
	}

	return r, nil
}

func (r *Repository) nextID(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx, bson.M{"_id": name}, bson.M{"$inc": bson.M{"seq": 1}}, opts).
		Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %s id: %w", name, err)
	}
	return counter.Seq, nil
}

func now() time.Time {
	// mongo keeps millisecond precision
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (r *Repository) CreateArticle(ctx context.Context, n domain.NewArticle) (domain.Article, error) {
	id, err := r.nextID(ctx, articlesCollection)
	if err != nil {
		return domain.Article{}, err
	}

	a := n.Build(id, now())
	if _, err := r.articles.InsertOne(ctx, toArticleDoc(a)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Article{}, storage.ErrDuplicateURL
		}
		return domain.Article{}, fmt.Errorf("failed to insert article: %w", err)
	}

	slog.Debug("Article stored in mongo", "id", a.ID, "title", a.Title)
	return a, nil
}

func (r *Repository) GetArticle(ctx context.Context, id int64) (domain.Article, error) {
	return r.findArticle(ctx, bson.M{"_id": id})
}

func (r *Repository) GetArticleByURL(ctx context.Context, url string) (domain.Article, error) {
	if url == "" {
		return domain.Article{}, storage.ErrNotFound
	}
	return r.findArticle(ctx, bson.M{"url": url})
}

func (r *Repository) findArticle(ctx context.Context, filter bson.M) (domain.Article, error) {
	var doc articleDoc
	if err := r.articles.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Article{}, storage.ErrNotFound
		}
		return domain.Article{}, fmt.Errorf("failed to get article: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *Repository) UpdateArticle(ctx context.Context, id int64, patch domain.ArticlePatch) (domain.Article, error) {
	if patch.NeutralVersion == nil {
		return r.GetArticle(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"neutral_version": *patch.NeutralVersion}}

	var doc articleDoc
	if err := r.articles.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Article{}, storage.ErrNotFound
		}
		return domain.Article{}, fmt.Errorf("failed to update article: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *Repository) GetRecentArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	articles := make([]domain.Article, 0, max(limit, 0))
	// a zero limit means "no limit" to the driver
	if limit <= 0 {
		return articles, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.articles.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent articles: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc articleDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode article: %w", err)
		}
		articles = append(articles, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return articles, nil
}

func (r *Repository) CreateRelatedArticle(ctx context.Context, n domain.NewRelatedArticle) (domain.RelatedArticle, error) {
	count, err := r.articles.CountDocuments(ctx, bson.M{"_id": n.OriginalArticleID}, options.Count().SetLimit(1))
	if err != nil {
		return domain.RelatedArticle{}, fmt.Errorf("failed to check original article: %w", err)
	}
	if count == 0 {
		return domain.RelatedArticle{}, storage.ErrNotFound
	}

	id, err := r.nextID(ctx, relatedCollection)
	if err != nil {
		return domain.RelatedArticle{}, err
	}

	ra := n.Build(id, now())
	if _, err := r.related.InsertOne(ctx, relatedDoc(ra)); err != nil {
		return domain.RelatedArticle{}, fmt.Errorf("failed to insert related article: %w", err)
	}
	return ra, nil
}

func (r *Repository) GetRelatedArticlesByOriginalID(ctx context.Context, originalID int64) ([]domain.RelatedArticle, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.related.Find(ctx, bson.M{"original_article_id": originalID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query related articles: %w", err)
	}
	defer cursor.Close(ctx)

	related := make([]domain.RelatedArticle, 0)
	for cursor.Next(ctx) {
		var doc relatedDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode related article: %w", err)
		}
		related = append(related, domain.RelatedArticle(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return related, nil
}

func toArticleDoc(a domain.Article) articleDoc {
	return articleDoc{
		ID:                a.ID,
		URL:               a.URL,
		Title:             a.Title,
		Content:           a.Content,
		Source:            a.Source,
		BiasScore:         a.BiasScore,
		PoliticalLeaning:  a.PoliticalLeaning,
		EmotionalLanguage: a.EmotionalLanguage,
		FactualReporting:  a.FactualReporting,
		NeutralVersion:    a.NeutralVersion,
		AnalysisDetails:   a.AnalysisDetails,
		CreatedAt:         a.CreatedAt,
	}
}

func (d articleDoc) toDomain() domain.Article {
	return domain.Article{
		ID:                d.ID,
		URL:               d.URL,
		Title:             d.Title,
		Content:           d.Content,
		Source:            d.Source,
		BiasScore:         d.BiasScore,
		PoliticalLeaning:  d.PoliticalLeaning,
		EmotionalLanguage: d.EmotionalLanguage,
		FactualReporting:  d.FactualReporting,
		NeutralVersion:    d.NeutralVersion,
		AnalysisDetails:   d.AnalysisDetails,
		CreatedAt:         d.CreatedAt,
	}
}

var _ storage.Repository = (*Repository)(nil)
