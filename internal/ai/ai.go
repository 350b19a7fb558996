// Package ai defines the text-generation collaborator used to draft product
// descriptions and catalog taglines. Calls are best effort: callers fall back
// to the static copy below on any failure.
package ai

import (
	"context"
	"fmt"
	"strings"
)

// TextGenerator produces short marketing copy with a single model call per
// method.
type TextGenerator interface {
	ProductDescription(ctx context.Context, productName, categoryName string) (string, error)
	CatalogTagline(ctx context.Context, catalogName string, productNames []string) (string, error)
}

// Fallback copy substituted when generation fails or is disabled.
const (
	FallbackDescription = "A quality product, carefully selected for our customers."
	FallbackTagline     = "A hand-picked collection of our favorite products."
)

// DescriptionPrompt builds the prompt shared by all backends for product
// descriptions.
func DescriptionPrompt(productName, categoryName string) string {
	return fmt.Sprintf(
		"Write a short, friendly product description (at most two sentences, plain text, no markdown) "+
			"for a product named %q in the category %q.",
		productName, categoryName)
}

// TaglinePrompt builds the prompt shared by all backends for catalog
// taglines.
func TaglinePrompt(catalogName string, productNames []string) string {
	return fmt.Sprintf(
		"Write one catchy marketing tagline (a single sentence, plain text, no quotes, no markdown) "+
			"for a product catalog named %q featuring: %s.",
		catalogName, strings.Join(productNames, ", "))
}
