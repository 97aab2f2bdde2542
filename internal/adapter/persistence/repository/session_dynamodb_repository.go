package repository

import (
	"context"
	"errors"
	"time"

	"flota_ot/internal/domain/entities"
	"flota_ot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "sessions"

var ErrSessionNotFound = errors.New("session not found")

type sessionItem struct {
	Token       string                `dynamodbav:"token"`
	CookieUser  entities.CookieUser   `dynamodbav:"cookie_user"`
	LegacyUser  entities.LegacyUser   `dynamodbav:"legacy_user"`
	Permissions []entities.Permission `dynamodbav:"permissions"`
	CreatedAt   string                `dynamodbav:"created_at"`
}

// SessionDynamoRepository persists Session entities in DynamoDB.
//
// Table requirements:
//   - PK: token (string)
//
// Tokens are server-minted UUIDs, so the conditional put only guards against
// a duplicated mint, never against a legitimate overwrite.

type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) Put(ctx context.Context, s entities.Session) (entities.Session, error) {
	it := toSessionItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Session{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
	})
	if err != nil {
		return entities.Session{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, ErrSessionNotFound
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

func (r *SessionDynamoRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
	})
	return err
}

func toSessionItem(s entities.Session) sessionItem {
	return sessionItem{
		Token:       s.Token,
		CookieUser:  s.CookieUser,
		LegacyUser:  s.LegacyUser,
		Permissions: s.Permissions,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSessionItem(it sessionItem) entities.Session {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Session{
		Token:       it.Token,
		CookieUser:  it.CookieUser,
		LegacyUser:  it.LegacyUser,
		Permissions: it.Permissions,
		CreatedAt:   createdAt,
	}
}
