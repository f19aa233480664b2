package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// MemoryClient is an in-memory Client with the same merge-patch semantics as
// the Firestore implementation. It backs repository tests and local
// development without credentials.
type MemoryClient struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]interface{}
	order       map[string][]string
	nextID      int
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		collections: make(map[string]map[string]map[string]interface{}),
		order:       make(map[string][]string),
	}
}

func (c *MemoryClient) Get(ctx context.Context, collection, id string) (*Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.collections[collection][id]
	if !ok {
		return nil, NotFoundError
	}

	return &Document{ID: id, Data: deepCopy(doc)}, nil
}

func (c *MemoryClient) Query(ctx context.Context, collection string, filters map[string]interface{}) ([]*Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var docs []*Document
	for _, id := range c.order[collection] {
		doc, ok := c.collections[collection][id]
		if !ok {
			continue
		}

		matches := true
		for field, value := range filters {
			if !reflect.DeepEqual(doc[field], value) {
				matches = false
				break
			}
		}
		if matches {
			docs = append(docs, &Document{ID: id, Data: deepCopy(doc)})
		}
	}

	return docs, nil
}

func (c *MemoryClient) Create(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := fmt.Sprintf("doc-%d", c.nextID)
	c.put(collection, id, deepCopy(data))
	return id, nil
}

func (c *MemoryClient) Set(ctx context.Context, collection, id string, data map[string]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.put(collection, id, deepCopy(data))
	return nil
}

func (c *MemoryClient) Patch(ctx context.Context, collection, id string, partial map[string]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.collections[collection][id]
	if !ok {
		doc = make(map[string]interface{})
		c.put(collection, id, doc)
	}
	mergeInto(doc, partial)
	return nil
}

func (c *MemoryClient) ClearField(ctx context.Context, collection, id, fieldPath string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.collections[collection][id]
	if !ok {
		return NotFoundError
	}

	segments := strings.Split(fieldPath, ".")
	for i := 0; i < len(segments)-1; i++ {
		nested, ok := doc[segments[i]].(map[string]interface{})
		if !ok {
			return nil
		}
		doc = nested
	}
	delete(doc, segments[len(segments)-1])
	return nil
}

func (c *MemoryClient) Delete(ctx context.Context, collection, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.collections[collection], id)
	return nil
}

// put stores a document body, tracking insertion order for Query.
func (c *MemoryClient) put(collection, id string, data map[string]interface{}) {
	if c.collections[collection] == nil {
		c.collections[collection] = make(map[string]map[string]interface{})
	}
	if _, exists := c.collections[collection][id]; !exists {
		c.order[collection] = append(c.order[collection], id)
	}
	c.collections[collection][id] = data
}

// mergeInto merges src into dst recursively: nested maps are merged
// key-by-key, everything else is replaced.
func mergeInto(dst, src map[string]interface{}) {
	for key, value := range src {
		srcMap, srcIsMap := value.(map[string]interface{})
		dstMap, dstIsMap := dst[key].(map[string]interface{})
		if srcIsMap && dstIsMap {
			mergeInto(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			dst[key] = deepCopy(srcMap)
			continue
		}
		dst[key] = copyValue(value)
	}
}

func deepCopy(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for key, value := range data {
		out[key] = copyValue(value)
	}
	return out
}

func copyValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return deepCopy(v)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, elem := range v {
			out[i] = copyValue(elem)
		}
		return out
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	default:
		return value
	}
}
