package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"portfolio/domain/core/entities"
	"portfolio/infrastructure/persistence"
	pkgerrors "portfolio/pkg/errors"
)

// Client is the subset of the DynamoDB API the repository uses.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// ContentRepository keeps the document as one DynamoDB item keyed by
// content key, so several sites can share a table.
type ContentRepository struct {
	client     Client
	tableName  string
	contentKey string
	logger     *zap.Logger
	now        func() time.Time
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(client Client, tableName, contentKey string, logger *zap.Logger) *ContentRepository {
	return &ContentRepository{
		client:     client,
		tableName:  tableName,
		contentKey: contentKey,
		logger:     logger,
		now:        time.Now,
	}
}

// contentItem represents the DynamoDB item structure for the document.
// The body is stored as the same JSON the file backend writes.
type contentItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	Body       string `dynamodbav:"Body"`
	Milestones int    `dynamodbav:"Milestones"`
	UpdatedAt  string `dynamodbav:"UpdatedAt"`
}

func (r *ContentRepository) key() (string, string) {
	return fmt.Sprintf("CONTENT#%s", r.contentKey), "DOCUMENT"
}

// Load fetches the document item
func (r *ContentRepository) Load(ctx context.Context) (entities.Document, error) {
	pk, sk := r.key()
	keyAV, err := attributevalue.MarshalMap(map[string]string{"PK": pk, "SK": sk})
	if err != nil {
		return entities.Document{}, pkgerrors.NewStorageError("Failed to load content", err)
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyAV,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		r.logger.Error("Failed to get content item", zap.String("pk", pk), zap.Error(err))
		return entities.Document{}, pkgerrors.NewStorageError("Failed to load content", err)
	}
	if len(out.Item) == 0 {
		return entities.Document{}, pkgerrors.NewStorageError("Failed to load content",
			fmt.Errorf("no item %s/%s in %s", pk, sk, r.tableName))
	}

	var item contentItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return entities.Document{}, pkgerrors.NewStorageError("Failed to load content", err)
	}

	doc, err := persistence.DecodeDocument([]byte(item.Body))
	if err != nil {
		return entities.Document{}, pkgerrors.NewStorageError("Failed to load content", err)
	}
	return doc, nil
}

// Save overwrites the document item
func (r *ContentRepository) Save(ctx context.Context, doc entities.Document) error {
	body, err := persistence.EncodeDocument(doc)
	if err != nil {
		return pkgerrors.NewStorageError("Failed to save content", err)
	}

	pk, sk := r.key()
	item := contentItem{
		PK:         pk,
		SK:         sk,
		EntityType: "CONTENT",
		Body:       string(body),
		Milestones: len(doc.Timeline),
		UpdatedAt:  r.now().UTC().Format(time.RFC3339),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pkgerrors.NewStorageError("Failed to save content", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.logger.Error("Failed to put content item", zap.String("pk", pk), zap.Error(err))
		return pkgerrors.NewStorageError("Failed to save content", err)
	}

	r.logger.Debug("Content item saved", zap.String("pk", pk), zap.Int("bytes", len(body)))
	return nil
}
