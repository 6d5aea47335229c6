package domain

import "context"

// ContextRetriever returns the most relevant reference-material
// passages for a query against one exercise's index.
type ContextRetriever interface {
	Retrieve(ctx context.Context, exerciseID, query string) ([]string, error)
}
