package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// firestoreClient implements Client on top of Cloud Firestore.
type firestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient wraps an initialized Firestore client.
func NewFirestoreClient(client *firestore.Client) Client {
	return &firestoreClient{client: client}
}

func (c *firestoreClient) Get(ctx context.Context, collection, id string) (*Document, error) {
	snap, err := c.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, NotFoundError
	}
	if err != nil {
		return nil, fmt.Errorf("error getting document %v/%v: %v", collection, id, err)
	}

	return &Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (c *firestoreClient) Query(ctx context.Context, collection string, filters map[string]interface{}) ([]*Document, error) {
	q := c.client.Collection(collection).Query
	for field, value := range filters {
		q = q.Where(field, "==", value)
	}

	var docs []*Document
	it := q.Documents(ctx)
	defer it.Stop()
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error querying collection %v: %v", collection, err)
		}
		docs = append(docs, &Document{ID: snap.Ref.ID, Data: snap.Data()})
	}

	return docs, nil
}

func (c *firestoreClient) Create(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	ref, _, err := c.client.Collection(collection).Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("error creating document in %v: %v", collection, err)
	}
	return ref.ID, nil
}

func (c *firestoreClient) Set(ctx context.Context, collection, id string, data map[string]interface{}) error {
	_, err := c.client.Collection(collection).Doc(id).Set(ctx, data)
	if err != nil {
		return fmt.Errorf("error setting document %v/%v: %v", collection, id, err)
	}
	return nil
}

func (c *firestoreClient) Patch(ctx context.Context, collection, id string, partial map[string]interface{}) error {
	_, err := c.client.Collection(collection).Doc(id).Set(ctx, partial, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("error patching document %v/%v: %v", collection, id, err)
	}
	return nil
}

func (c *firestoreClient) ClearField(ctx context.Context, collection, id, fieldPath string) error {
	_, err := c.client.Collection(collection).Doc(id).Update(ctx, []firestore.Update{
		{
			Path:  fieldPath,
			Value: firestore.Delete,
		},
	})
	if status.Code(err) == codes.NotFound {
		return NotFoundError
	}
	if err != nil {
		return fmt.Errorf("error clearing field %v on %v/%v: %v", fieldPath, collection, id, err)
	}
	return nil
}

func (c *firestoreClient) Delete(ctx context.Context, collection, id string) error {
	_, err := c.client.Collection(collection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("error deleting document %v/%v: %v", collection, id, err)
	}
	return nil
}
